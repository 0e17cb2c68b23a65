package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAliveHandler returns a handler for the liveness check command.
// It replies to the originating message with the configured acknowledgement.
func NewAliveHandler(deps HandlerDeps) bot.HandlerFunc {
	return aliveHandler{deps}.Handle
}

type aliveHandler struct {
	deps HandlerDeps
}

func (h aliveHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "alive")

	if update.Message == nil {
		log.WarnContext(ctx, "Alive handler received update with nil message", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling liveness check", "chat_id", update.Message.Chat.ID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   h.deps.Config.Messages.AliveReply,
		ReplyParameters: &models.ReplyParameters{
			MessageID: update.Message.ID,
		},
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send liveness reply", "error", err, "chat_id", update.Message.Chat.ID)
	}
}
