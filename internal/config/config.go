// Package config manages application configuration from environment variables,
// an optional config.yaml file, and default values.
package config

import (
	"time"
)

// Config defines the application configuration. Values can be set via
// environment variables prefixed with BOT_ (e.g., BOT_TELEGRAM_TOKEN) or
// through config.yaml in the working directory.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Todoist  TodoistConfig  `mapstructure:"todoist"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Messages MessagesConfig `mapstructure:"messages"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credentials and the single chat the bot
// talks to. ChatID doubles as the only authorized sender.
type TelegramConfig struct {
	Token  string `mapstructure:"token"   validate:"required"`
	ChatID int64  `mapstructure:"chat_id" validate:"required,gt=0"`
}

// TodoistConfig holds credentials and connection settings for the Todoist
// REST API.
type TodoistConfig struct {
	Token   string        `mapstructure:"token"    validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"  validate:"required,min=1s,max=2m"`
}

// ReminderConfig controls the reminder cycle: how often owned tasks are
// refetched, at which whole-minute offsets before the due instant a reminder
// fires, and the fixed clock offset used for all due-time arithmetic.
type ReminderConfig struct {
	Interval  time.Duration `mapstructure:"interval"   validate:"required,min=10s,max=10m"`
	LeadTimes []int         `mapstructure:"lead_times" validate:"required,min=1,dive,gt=0"`
	UTCOffset time.Duration `mapstructure:"utc_offset" validate:"min=-12h,max=14h"`
}

// MessagesConfig holds the inbound command tokens and outbound reply texts.
type MessagesConfig struct {
	AliveToken  string   `mapstructure:"alive_token"  validate:"required"`
	AliveReply  string   `mapstructure:"alive_reply"  validate:"required"`
	TodayTokens []string `mapstructure:"today_tokens" validate:"required,min=1,dive,required"`
	TodayEmpty  string   `mapstructure:"today_empty"  validate:"required"`
}
