package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/config"
	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

func TestBuildWiresWebhook(t *testing.T) {
	var calls atomic.Int32
	slackSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer slackSrv.Close()

	cfg := config.DefaultConfig()
	cfg.Slack.WebhookURL = slackSrv.URL
	cfg.Slack.Channel = "#soc"
	cfg.Org.Name = "Acme"
	cfg.Org.Icon = "https://example.com/i.png"
	cfg.Hive.Timezone = "UTC"

	srv, err := build(&cfg, logger.Nop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"objectType":"observable","object":{"data":"1.2.3.4"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBuildRejectsBadWebhookURL(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Slack.WebhookURL = "not a url"

	_, err := build(&cfg, logger.Nop())
	assert.Error(t, err)
}

func TestBuildLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.log")
	log, closeLog, err := buildLogger(config.LogConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)
	require.NotNil(t, closeLog)

	log.Infof("hello %s", "file")
	_ = log.Sync()
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello file"`)
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{"hookURL", "SLACK_WEBHOOK_URL", "slackChannel", "SLACK_CHANNEL", "orgName", "ORG_NAME", "orgIcon", "ORG_ICON"} {
		t.Setenv(key, "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := Run(ctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
