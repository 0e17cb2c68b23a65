// Package tasks implements the bot's scheduled jobs: the periodic refetch
// of owned tasks and the lead-time reminder sends.
package tasks

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/avezhov/duebot/internal/agenda"
	"github.com/avezhov/duebot/internal/config"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Repo   *agenda.Repository
	Clock  *agenda.Clock
	TG     *tgbot.Bot
}
