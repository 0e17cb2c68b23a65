package agenda

import (
	"errors"
	"testing"
	"time"

	"github.com/avezhov/duebot/internal/todoist"
)

// fixedClock returns a clock at the given UTC offset whose wall time is
// pinned to the given instant.
func fixedClock(offset time.Duration, instant time.Time) *Clock {
	c := NewClock(offset)
	c.now = func() time.Time { return instant }
	return c
}

func TestNowTruncatesToSecond(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 3, 14, 12, 0, 0, 987654321, time.UTC)
	c := fixedClock(3*time.Hour, instant)

	now := c.Now()
	if now.Nanosecond() != 0 {
		t.Errorf("Now() kept sub-second precision: %v", now)
	}
	if !now.Equal(instant.Truncate(time.Second)) {
		t.Errorf("Now() = %v, want %v", now, instant.Truncate(time.Second))
	}

	_, offsetSecs := now.Zone()
	if offsetSecs != 3*60*60 {
		t.Errorf("Now() zone offset = %d seconds, want %d", offsetSecs, 3*60*60)
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	// 23:30 UTC is already past midnight at UTC+3
	instant := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	c := fixedClock(3*time.Hour, instant)

	if got := c.Today(); got != "2026-03-15" {
		t.Errorf("Today() = %q, want %q", got, "2026-03-15")
	}
}

func TestMinutesUntil(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c := fixedClock(3*time.Hour, instant)

	timedTask := func(away time.Duration) todoist.Task {
		return todoist.Task{
			ID:      "1",
			Content: "task",
			Due:     &todoist.Due{Date: "2026-03-14", Datetime: c.Now().Add(away).Format(dueTimeLayout)},
		}
	}

	testCases := []struct {
		name string
		away time.Duration
		want int
	}{
		{
			name: "599 seconds away truncates down to 9",
			away: 599 * time.Second,
			want: 9,
		},
		{
			name: "exactly 600 seconds away is 10",
			away: 600 * time.Second,
			want: 10,
		},
		{
			name: "601 seconds away is still 10",
			away: 601 * time.Second,
			want: 10,
		},
		{
			name: "601 seconds past due truncates toward zero to -10",
			away: -601 * time.Second,
			want: -10,
		},
		{
			name: "59 seconds past due is 0",
			away: -59 * time.Second,
			want: 0,
		},
		{
			name: "due right now",
			away: 0,
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.MinutesUntil(timedTask(tc.away))
			if err != nil {
				t.Fatalf("MinutesUntil() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("MinutesUntil() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMinutesUntilErrors(t *testing.T) {
	t.Parallel()

	c := fixedClock(3*time.Hour, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	testCases := []struct {
		name    string
		task    todoist.Task
		wantErr error
	}{
		{
			name:    "no due descriptor",
			task:    todoist.Task{ID: "1", Content: "no due"},
			wantErr: ErrNoDueTime,
		},
		{
			name:    "date-only due descriptor",
			task:    todoist.Task{ID: "2", Content: "dated", Due: &todoist.Due{Date: "2026-03-14"}},
			wantErr: ErrNoDueTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.MinutesUntil(tc.task)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("MinutesUntil() error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	t.Run("unparseable due timestamp", func(t *testing.T) {
		t.Parallel()

		task := todoist.Task{ID: "3", Content: "bad", Due: &todoist.Due{Date: "2026-03-14", Datetime: "not-a-timestamp"}}
		if _, err := c.MinutesUntil(task); err == nil {
			t.Error("MinutesUntil() expected parse error, got nil")
		}
	})
}
