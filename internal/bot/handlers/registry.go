package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler together with everything
// needed to register it: the match pattern, handler type, and middleware.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all bot commands.
// Commands match on exact message text and are gated to the configured
// recipient; the today command is registered once per accepted token so
// each language variant works.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	recipientOnly := []tgbot.Middleware{FromRecipient(deps)}

	handlers["alive"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     deps.Config.Messages.AliveToken,
		Handler:     NewAliveHandler(deps),
		MatchType:   tgbot.MatchTypeExact,
		Middleware:  recipientOnly,
	}

	todayHandler := NewTodayHandler(deps)
	for _, token := range deps.Config.Messages.TodayTokens {
		handlers["today:"+token] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     token,
			Handler:     todayHandler,
			MatchType:   tgbot.MatchTypeExact,
			Middleware:  recipientOnly,
		}
	}

	return handlers
}
