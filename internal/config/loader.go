package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Load builds the configuration from defaults, an optional YAML file and
// the environment (including .env files), in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := ReadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	if strings.TrimSpace(path) != "" {
		if err := readFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	applyLegacyEnv(&cfg)
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	data = []byte(os.ExpandEnv(string(data)))

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBuffer(data)); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

// applyLegacyEnv honours the camelCase variable names used by earlier
// deployments. envconfig upper-cases keys, so these are read directly.
func applyLegacyEnv(cfg *Config) {
	legacy := []struct {
		key    string
		target *string
	}{
		{"hookURL", &cfg.Slack.WebhookURL},
		{"slackChannel", &cfg.Slack.Channel},
		{"orgName", &cfg.Org.Name},
		{"orgIcon", &cfg.Org.Icon},
		{"hiveURL", &cfg.Hive.URL},
	}
	for _, l := range legacy {
		if envNonEmpty(l.key) {
			*l.target = strings.TrimSpace(os.Getenv(l.key))
		}
	}
}

func applyEnvOverrides(cfg *Config) error {
	sections := []struct {
		name   string
		target any
	}{
		{"server", &cfg.Server},
		{"slack", &cfg.Slack},
		{"hive", &cfg.Hive},
		{"org", &cfg.Org},
		{"log", &cfg.Log},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return fmt.Errorf("%s env: %w", s.name, err)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if strings.TrimSpace(cfg.Slack.Username) == "" {
		cfg.Slack.Username = def.Slack.Username
	}
	if strings.TrimSpace(cfg.Slack.IconEmoji) == "" {
		cfg.Slack.IconEmoji = def.Slack.IconEmoji
	}
	if cfg.Slack.Timeout <= 0 {
		cfg.Slack.Timeout = def.Slack.Timeout
	}
	if strings.TrimSpace(cfg.Hive.URL) == "" {
		cfg.Hive.URL = def.Hive.URL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

func envNonEmpty(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}
