// Package agenda contains the scheduling domain: the fixed-offset clock used
// for due-time arithmetic, the task filter, and the repository that resolves
// the user's identity and owned tasks against the Todoist backend.
package agenda

import (
	"errors"
	"fmt"
	"time"

	"github.com/avezhov/duebot/internal/todoist"
)

// dueTimeLayout is the local timestamp format Todoist uses for timed due
// descriptors. It carries no zone; the configured fixed offset applies.
const dueTimeLayout = "2006-01-02T15:04:05"

// ErrNoDueTime indicates MinutesUntil was called on a task without a timed
// due descriptor. This is a caller defect, not an environmental condition.
var ErrNoDueTime = errors.New("agenda: task has no due time")

// Clock produces the current instant at a fixed UTC offset, truncated to
// whole seconds, and computes whole-minute distances to task due instants.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock creates a Clock pinned to the given UTC offset.
func NewClock(offset time.Duration) *Clock {
	return &Clock{
		loc: time.FixedZone("", int(offset/time.Second)),
		now: time.Now,
	}
}

// Now returns the current instant in the fixed offset with sub-second
// precision discarded, so distances to due instants are exact in seconds.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc).Truncate(time.Second)
}

// Today returns the current calendar date in the fixed offset, in the same
// "2006-01-02" form Todoist uses for due dates.
func (c *Clock) Today() string {
	return c.Now().Format("2006-01-02")
}

// MinutesUntil returns the signed whole-minute distance from now to the
// task's due instant. Division truncates toward zero: a task 599 seconds
// away reports 9, and one 601 seconds past due reports -10.
func (c *Clock) MinutesUntil(task todoist.Task) (int, error) {
	if !task.Due.HasTime() {
		return 0, fmt.Errorf("%w: task %s", ErrNoDueTime, task.ID)
	}

	due, err := time.ParseInLocation(dueTimeLayout, task.Due.Datetime, c.loc)
	if err != nil {
		return 0, fmt.Errorf("failed to parse due datetime %q for task %s: %w", task.Due.Datetime, task.ID, err)
	}

	seconds := int(due.Sub(c.Now()) / time.Second)
	return seconds / 60, nil
}
