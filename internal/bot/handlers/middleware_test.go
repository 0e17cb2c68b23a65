package handlers

import (
	"context"
	"log/slog"
	"testing"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avezhov/duebot/internal/config"
)

func TestFromRecipient(t *testing.T) {
	t.Parallel()

	deps := HandlerDeps{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{
			Telegram: config.TelegramConfig{ChatID: 42},
		},
	}

	testCases := []struct {
		name     string
		update   *models.Update
		wantCall bool
	}{
		{
			name: "configured recipient passes",
			update: &models.Update{
				Message: &models.Message{
					From: &models.User{ID: 42},
					Chat: models.Chat{ID: 42},
					Text: "1",
				},
			},
			wantCall: true,
		},
		{
			name: "other sender is dropped silently",
			update: &models.Update{
				Message: &models.Message{
					From: &models.User{ID: 43},
					Chat: models.Chat{ID: 43},
					Text: "1",
				},
			},
			wantCall: false,
		},
		{
			name:     "update without message is dropped",
			update:   &models.Update{},
			wantCall: false,
		},
		{
			name: "message without sender is dropped",
			update: &models.Update{
				Message: &models.Message{Chat: models.Chat{ID: 42}, Text: "1"},
			},
			wantCall: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			next := func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
				called = true
			}

			FromRecipient(deps)(next)(context.Background(), nil, tc.update)

			if called != tc.wantCall {
				t.Errorf("handler called = %v, want %v", called, tc.wantCall)
			}
		})
	}
}
