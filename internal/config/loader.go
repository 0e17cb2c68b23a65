package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultTodoistBaseURL = "https://api.todoist.com/rest/v2"
	defaultTodoistTimeout = 10 * time.Second

	defaultReminderInterval = 60 * time.Second
	defaultUTCOffset        = 3 * time.Hour

	defaultAliveToken = "1"
	defaultAliveReply = "Да"
	defaultTodayEmpty = "Nothing due today."
)

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file (optional)
// 3. BOT_* environment variables
func Load() (*Config, error) {
	setDefaults()

	if err := readConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// readConfig initializes viper with environment binding and reads the
// optional config file.
func readConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine, env vars and defaults still apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", true)

	// Required credentials have empty defaults so the keys are known to
	// viper and can be supplied via environment variables alone.
	viper.SetDefault("telegram.token", "")
	viper.SetDefault("telegram.chat_id", 0)

	viper.SetDefault("todoist.token", "")
	viper.SetDefault("todoist.base_url", defaultTodoistBaseURL)
	viper.SetDefault("todoist.timeout", defaultTodoistTimeout)

	viper.SetDefault("reminder.interval", defaultReminderInterval)
	viper.SetDefault("reminder.lead_times", []int{10, 30, 60})
	viper.SetDefault("reminder.utc_offset", defaultUTCOffset)

	viper.SetDefault("messages.alive_token", defaultAliveToken)
	viper.SetDefault("messages.alive_reply", defaultAliveReply)
	viper.SetDefault("messages.today_tokens", []string{"today", "сегодня"})
	viper.SetDefault("messages.today_empty", defaultTodayEmpty)
}
