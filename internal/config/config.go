package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultAddr            = ":5000"
	DefaultHiveURL         = "http://thehive:9000"
	DefaultSlackTimeout    = 10 * time.Second
	DefaultUsername        = "TheHive"
	DefaultIconEmoji       = ":honeybee:"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Slack  SlackConfig  `yaml:"slack" mapstructure:"slack"`
	Hive   HiveConfig   `yaml:"hive" mapstructure:"hive"`
	Org    OrgConfig    `yaml:"org" mapstructure:"org"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			MaxBodyBytes:    DefaultMaxBodyBytes,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Slack: SlackConfig{
			Username:  DefaultUsername,
			IconEmoji: DefaultIconEmoji,
			Timeout:   DefaultSlackTimeout,
		},
		Hive: HiveConfig{URL: DefaultHiveURL},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr" envconfig:"LISTEN_ADDR"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes" envconfig:"MAX_BODY_BYTES"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

type SlackConfig struct {
	WebhookURL string        `yaml:"webhook_url" mapstructure:"webhook_url" envconfig:"SLACK_WEBHOOK_URL"`
	Channel    string        `yaml:"channel" mapstructure:"channel" envconfig:"SLACK_CHANNEL"`
	Username   string        `yaml:"username" mapstructure:"username" envconfig:"SLACK_USERNAME"`
	IconEmoji  string        `yaml:"icon_emoji" mapstructure:"icon_emoji" envconfig:"SLACK_ICON_EMOJI"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout" envconfig:"SLACK_TIMEOUT"`
}

type HiveConfig struct {
	URL      string `yaml:"url" mapstructure:"url" envconfig:"HIVE_URL"`
	Timezone string `yaml:"timezone" mapstructure:"timezone" envconfig:"TIMEZONE"`
}

type OrgConfig struct {
	Name string `yaml:"name" mapstructure:"name" envconfig:"ORG_NAME"`
	Icon string `yaml:"icon" mapstructure:"icon" envconfig:"ORG_ICON"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" mapstructure:"format" envconfig:"LOG_FORMAT"`
	File   string `yaml:"file" mapstructure:"file" envconfig:"LOG_FILE"`
}

// Location resolves the zone used to render alert timestamps. Empty means local time.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Hive.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Slack.WebhookURL) == "" {
		errs = append(errs, errors.New("slack webhook URL is required (hookURL or SLACK_WEBHOOK_URL)"))
	}
	if strings.TrimSpace(c.Slack.Channel) == "" {
		errs = append(errs, errors.New("slack channel is required (slackChannel or SLACK_CHANNEL)"))
	}
	if strings.TrimSpace(c.Org.Name) == "" {
		errs = append(errs, errors.New("organization name is required (orgName or ORG_NAME)"))
	}
	if strings.TrimSpace(c.Org.Icon) == "" {
		errs = append(errs, errors.New("organization icon is required (orgIcon or ORG_ICON)"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	return errors.Join(errs...)
}
