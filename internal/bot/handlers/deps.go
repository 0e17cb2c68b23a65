package handlers

import (
	"log/slog"

	"github.com/avezhov/duebot/internal/agenda"
	"github.com/avezhov/duebot/internal/config"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Repo   *agenda.Repository
	Clock  *agenda.Clock
}
