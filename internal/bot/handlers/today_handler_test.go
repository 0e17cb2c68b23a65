package handlers

import (
	"testing"

	"github.com/avezhov/duebot/internal/todoist"
)

func TestFormatTodayList(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tasks    []todoist.Task
		expected string
	}{
		{
			name:     "empty list",
			tasks:    nil,
			expected: "",
		},
		{
			name: "timed and untimed tasks in fetch order",
			tasks: []todoist.Task{
				{Content: "Standup", Due: &todoist.Due{Date: "2026-03-14", Datetime: "2026-03-14T09:30:00"}},
				{Content: "Groceries", Due: &todoist.Due{Date: "2026-03-14"}},
			},
			expected: "Standup    09:30\nGroceries",
		},
		{
			name: "only untimed tasks",
			tasks: []todoist.Task{
				{Content: "Groceries", Due: &todoist.Due{Date: "2026-03-14"}},
				{Content: "Laundry", Due: &todoist.Due{Date: "2026-03-14"}},
			},
			expected: "Groceries\nLaundry",
		},
		{
			name: "only timed tasks",
			tasks: []todoist.Task{
				{Content: "Standup", Due: &todoist.Due{Date: "2026-03-14", Datetime: "2026-03-14T09:30:00"}},
				{Content: "Review", Due: &todoist.Due{Date: "2026-03-14", Datetime: "2026-03-14T16:05:00"}},
			},
			expected: "Standup    09:30\nReview    16:05",
		},
		{
			name: "task without due descriptor renders bare content",
			tasks: []todoist.Task{
				{Content: "Someday"},
			},
			expected: "Someday",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := formatTodayList(tc.tasks); got != tc.expected {
				t.Errorf("formatTodayList() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestDueTimeOfDay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		task     todoist.Task
		expected string
	}{
		{
			name:     "timed due descriptor",
			task:     todoist.Task{Due: &todoist.Due{Date: "2026-03-14", Datetime: "2026-03-14T09:30:00"}},
			expected: "09:30",
		},
		{
			name:     "date-only due descriptor",
			task:     todoist.Task{Due: &todoist.Due{Date: "2026-03-14"}},
			expected: "",
		},
		{
			name:     "no due descriptor",
			task:     todoist.Task{},
			expected: "",
		},
		{
			name:     "malformed short timestamp",
			task:     todoist.Task{Due: &todoist.Due{Date: "2026-03-14", Datetime: "09:30"}},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := dueTimeOfDay(tc.task); got != tc.expected {
				t.Errorf("dueTimeOfDay() = %q, want %q", got, tc.expected)
			}
		})
	}
}
