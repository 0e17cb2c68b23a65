package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avezhov/duebot/internal/agenda"
	"github.com/avezhov/duebot/internal/todoist"
)

// NewTodayHandler returns a handler for the "what's due today" command.
// It fetches the current task set, keeps tasks due on the current calendar
// date, and sends them as one message.
func NewTodayHandler(deps HandlerDeps) bot.HandlerFunc {
	return todayHandler{deps}.Handle
}

type todayHandler struct {
	deps HandlerDeps
}

func (h todayHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "today")

	if update.Message == nil {
		log.WarnContext(ctx, "Today handler received update with nil message", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling today command", "chat_id", update.Message.Chat.ID)

	tasks, err := h.deps.Repo.AllOwnedTasks(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch tasks", "error", err)
		return
	}

	due, err := agenda.Filter(tasks, agenda.FilterToday, h.deps.Clock.Today())
	if err != nil {
		log.ErrorContext(ctx, "Failed to filter tasks", "error", err)
		return
	}

	body := formatTodayList(due)
	if body == "" {
		body = h.deps.Config.Messages.TodayEmpty
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   body,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send today list", "error", err, "chat_id", update.Message.Chat.ID)
		return
	}

	log.DebugContext(ctx, "Sent today list", "tasks", len(due))
}

// formatTodayList renders one line per task: the content, plus the HH:MM
// time of day when the due descriptor carries one. Order is preserved.
func formatTodayList(tasks []todoist.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if hhmm := dueTimeOfDay(task); hhmm != "" {
			lines = append(lines, task.Content+"    "+hhmm)
		} else {
			lines = append(lines, task.Content)
		}
	}
	return strings.Join(lines, "\n")
}

// dueTimeOfDay extracts the HH:MM substring from a timed due descriptor,
// or returns "" for date-only and undated tasks.
func dueTimeOfDay(task todoist.Task) string {
	if !task.Due.HasTime() {
		return ""
	}
	dt := task.Due.Datetime
	if len(dt) < 16 {
		return ""
	}
	return dt[11:16]
}
