package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/avezhov/duebot/internal/config"
)

func TestAliveHandlerRepliesToMessage(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	var lastBody atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.Write([]byte(`{"ok":true,"result":{}}`))
			return
		}
		calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		lastBody.Store(string(body))
		w.Write([]byte(`{"ok":true,"result":{"message_id":8,"chat":{"id":42}}}`))
	}))
	t.Cleanup(srv.Close)

	b, err := tgbot.New("test-token", tgbot.WithServerURL(srv.URL), tgbot.WithSkipGetMe())
	if err != nil {
		t.Fatalf("failed to create bot: %v", err)
	}

	deps := HandlerDeps{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{
			Telegram: config.TelegramConfig{ChatID: 42},
			Messages: config.MessagesConfig{AliveToken: "1", AliveReply: "Да"},
		},
	}

	update := &models.Update{
		ID: 100,
		Message: &models.Message{
			ID:   7,
			From: &models.User{ID: 42},
			Chat: models.Chat{ID: 42},
			Text: "1",
		},
	}

	NewAliveHandler(deps)(context.Background(), b, update)

	if got := calls.Load(); got != 1 {
		t.Fatalf("sendMessage calls = %d, want exactly 1", got)
	}

	body, _ := lastBody.Load().(string)
	if !strings.Contains(body, "Да") {
		t.Errorf("sendMessage body %q does not carry the acknowledgement text", body)
	}
	if !strings.Contains(body, `"message_id":7`) {
		t.Errorf("sendMessage body %q does not reply to the originating message", body)
	}
}
