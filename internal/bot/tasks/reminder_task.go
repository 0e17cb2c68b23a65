package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/avezhov/duebot/internal/agenda"
	"github.com/avezhov/duebot/internal/todoist"
)

// newDueRemindersTask creates the scheduled task that refetches the user's
// tasks and sends a reminder for every timed task whose whole-minute
// distance to its due instant exactly equals one of the configured lead
// times. The match is recomputed from scratch every run, so a task stays
// silent once its minute value has moved past a lead time.
func newDueRemindersTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "due_reminders")

	leadTimes := make(map[int]struct{}, len(deps.Config.Reminder.LeadTimes))
	for _, minutes := range deps.Config.Reminder.LeadTimes {
		leadTimes[minutes] = struct{}{}
	}

	return func(ctx context.Context) error {
		startTime := time.Now()

		tasks, err := deps.Repo.AllOwnedTasks(ctx)
		if err != nil {
			// No partial sends on a failed fetch; the next run starts fresh
			return fmt.Errorf("failed to fetch tasks: %w", err)
		}

		timed, err := agenda.Filter(tasks, agenda.FilterDatetimed, "")
		if err != nil {
			return fmt.Errorf("failed to filter tasks: %w", err)
		}

		reminders := dueReminders(timed, deps.Clock, leadTimes, log)

		sent := 0
		for _, text := range reminders {
			_, err := deps.TG.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID: deps.Config.Telegram.ChatID,
				Text:   text,
			})
			if err != nil {
				// A failed send ends the run; the next one recomputes from scratch
				return fmt.Errorf("failed to send reminder %q: %w", text, err)
			}
			sent++
		}

		log.DebugContext(ctx, "Reminder run finished",
			"tasks", len(tasks), "timed", len(timed), "sent", sent, "duration", time.Since(startTime))
		return nil
	}
}

// dueReminders returns the reminder message for every task whose minute
// distance lands exactly on a lead time, in task order.
func dueReminders(timed []todoist.Task, clock *agenda.Clock, leadTimes map[int]struct{}, log *slog.Logger) []string {
	var reminders []string
	for _, task := range timed {
		minutes, err := clock.MinutesUntil(task)
		if err != nil {
			// Unparseable due timestamps are skipped, not fatal to the run
			log.Warn("Skipping task with bad due timestamp", "task_id", task.ID, "error", err)
			continue
		}
		if _, ok := leadTimes[minutes]; ok {
			reminders = append(reminders, fmt.Sprintf("%s in %d minutes", task.Content, minutes))
		}
	}
	return reminders
}
