package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/core/notify"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/metrics"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

const (
	DefaultUsername  = "TheHive"
	DefaultIconEmoji = ":honeybee:"
	DefaultTimeout   = 10 * time.Second
)

type Config struct {
	URL       string
	Channel   string
	Username  string
	IconEmoji string
	Timeout   time.Duration
}

// Notifier posts messages to a Slack incoming webhook. Each Send is a single attempt.
type Notifier struct {
	NameValue string
	url       string
	channel   string
	username  string
	iconEmoji string
	client    *http.Client
	log       *logger.Logger
}

type payload struct {
	Username    string              `json:"username"`
	IconEmoji   string              `json:"icon_emoji"`
	Channel     string              `json:"channel"`
	Attachments []notify.Attachment `json:"attachments"`
}

// StatusError is returned when Slack answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("slack status %d", e.Code)
}

func New(cfg Config, log *logger.Logger) (*Notifier, error) {
	if cfg.URL == "" {
		return nil, errors.New("slack webhook URL is required")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid slack webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("slack webhook URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("slack webhook URL must include a host")
	}
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	if cfg.IconEmoji == "" {
		cfg.IconEmoji = DefaultIconEmoji
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{
		NameValue: "slack",
		url:       cfg.URL,
		channel:   cfg.Channel,
		username:  cfg.Username,
		iconEmoji: cfg.IconEmoji,
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}, nil
}

func (n *Notifier) Name() string {
	return n.NameValue
}

func (n *Notifier) Send(ctx context.Context, msg notify.Message) error {
	icon := n.iconEmoji
	if msg.IconEmoji != "" {
		icon = msg.IconEmoji
	}
	body, err := json.Marshal(payload{
		Username:    n.username,
		IconEmoji:   icon,
		Channel:     n.channel,
		Attachments: msg.Attachments,
	})
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(metrics.StatusError).Inc()
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	start := time.Now()
	err = n.post(ctx, body)
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	metrics.NotificationsTotal.WithLabelValues(status).Inc()
	metrics.NotificationDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if err != nil {
		n.log.Errorf("failed to send message to slack %s: %v", RedactURL(n.url), err)
		return err
	}
	n.log.Infof("message posted to %s", n.channel)
	return nil
}

func (n *Notifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = RedactURL(urlErr.URL)
		}
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}

// RedactURL hides the secret path of a webhook URL for logging.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid-url>"
	}
	if u.Path != "" && u.Path != "/" {
		u.Path = "/REDACTED"
		u.RawPath = ""
	}
	if u.RawQuery != "" {
		u.RawQuery = "REDACTED"
	}
	return u.Redacted()
}
