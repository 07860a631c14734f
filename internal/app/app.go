package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/config"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/dispatch"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/notifiers/format"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/notifiers/slack"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/server"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
		if closeLog != nil {
			closeLog()
		}
	}()
	if configPath != "" {
		log.Infof("config loaded: %s", configPath)
	}

	srv, err := build(cfg, log)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func build(cfg *config.Config, log *logger.Logger) (*server.Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	notifier, err := buildNotifier(cfg.Slack, log)
	if err != nil {
		return nil, fmt.Errorf("build notifier: %w", err)
	}
	log.Infof("notifier ready: channel=%q url=%s", cfg.Slack.Channel, slack.RedactURL(cfg.Slack.WebhookURL))

	formatter := format.New(cfg.Org.Name, cfg.Org.Icon, cfg.Hive.URL, loc)
	log.Infof("case links: %s", formatter.CaseURL)

	d := dispatch.New(formatter, notifier, log)
	return server.New(server.Options{
		Addr:            cfg.Server.Addr,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		// primary post plus a possible error notification
		WriteTimeout: 2*cfg.Slack.Timeout + 5*time.Second,
	}, d, log), nil
}

func buildLogger(cfg config.LogConfig) (*logger.Logger, func(), error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}

	if cfg.File == "" {
		return logger.New(logger.Config{Level: cfg.Level, Format: cfg.Format}), nil, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		_ = file.Close()
	}
	return logger.New(logger.Config{Level: cfg.Level, Format: cfg.Format, Output: file}), closeFn, nil
}

func buildNotifier(cfg config.SlackConfig, log *logger.Logger) (*slack.Notifier, error) {
	return slack.New(slack.Config{
		URL:       cfg.WebhookURL,
		Channel:   cfg.Channel,
		Username:  cfg.Username,
		IconEmoji: cfg.IconEmoji,
		Timeout:   cfg.Timeout,
	}, log)
}
