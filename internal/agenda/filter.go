package agenda

import (
	"errors"
	"fmt"

	"github.com/avezhov/duebot/internal/todoist"
)

// FilterMode selects which due-descriptor shape Filter keeps.
type FilterMode string

const (
	// FilterDated keeps tasks with a date-only due descriptor.
	FilterDated FilterMode = "dated"
	// FilterDatetimed keeps tasks with a date-and-time due descriptor.
	FilterDatetimed FilterMode = "datetimed"
	// FilterToday keeps tasks whose due date equals the given calendar date,
	// with or without a time of day.
	FilterToday FilterMode = "today"
)

// ErrInvalidFilterMode indicates Filter was called with an unknown mode.
var ErrInvalidFilterMode = errors.New("agenda: invalid filter mode")

// Filter returns the tasks matching the given mode, preserving input order.
// The today argument is the current calendar date ("2006-01-02") and is only
// consulted for FilterToday.
func Filter(tasks []todoist.Task, mode FilterMode, today string) ([]todoist.Task, error) {
	var keep func(todoist.Task) bool

	switch mode {
	case FilterDated:
		keep = func(t todoist.Task) bool { return t.Due != nil && !t.Due.HasTime() }
	case FilterDatetimed:
		keep = func(t todoist.Task) bool { return t.Due.HasTime() }
	case FilterToday:
		keep = func(t todoist.Task) bool { return t.Due != nil && t.Due.Date == today }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilterMode, mode)
	}

	var result []todoist.Task
	for _, task := range tasks {
		if keep(task) {
			result = append(result, task)
		}
	}
	return result, nil
}
