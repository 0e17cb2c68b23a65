// Package handlers contains the Telegram command handlers, their
// registration logic, and middleware.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// FromRecipient creates a middleware that only lets through messages sent by
// the configured recipient. Anything else is dropped without a reply, so the
// bot stays invisible to other users.
func FromRecipient(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			if update.Message == nil || update.Message.From == nil {
				return
			}

			if update.Message.From.ID != deps.Config.Telegram.ChatID {
				deps.Logger.DebugContext(ctx, "Ignoring message from unknown sender",
					"user_id", update.Message.From.ID, "chat_id", update.Message.Chat.ID)
				return
			}

			next(ctx, bot, update)
		}
	}
}
