package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("hookURL", "https://hooks.slack.com/services/T/B/X")
	t.Setenv("slackChannel", "#soc")
	t.Setenv("orgName", "Acme SOC")
	t.Setenv("orgIcon", "https://example.com/icon.png")
}

func TestLoadFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("hiveURL", "https://hive.example.com")
	t.Setenv("SLACK_TIMEOUT", "3s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://hooks.slack.com/services/T/B/X", cfg.Slack.WebhookURL)
	assert.Equal(t, "#soc", cfg.Slack.Channel)
	assert.Equal(t, "Acme SOC", cfg.Org.Name)
	assert.Equal(t, "https://example.com/icon.png", cfg.Org.Icon)
	assert.Equal(t, "https://hive.example.com", cfg.Hive.URL)
	assert.Equal(t, 3*time.Second, cfg.Slack.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHiveURL, cfg.Hive.URL)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DefaultSlackTimeout, cfg.Slack.Timeout)
	assert.Equal(t, "TheHive", cfg.Slack.Username)
	assert.Equal(t, ":honeybee:", cfg.Slack.IconEmoji)
	assert.Equal(t, "info", cfg.Log.Level)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("hookURL", "")
	t.Setenv("orgIcon", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slack webhook URL is required")
	assert.Contains(t, err.Error(), "organization icon is required")
}

func TestUpperCaseEnvWinsOverLegacy(t *testing.T) {
	setRequired(t)
	t.Setenv("SLACK_CHANNEL", "#upper")
	t.Setenv("HIVE_URL", "http://hive.upper:9000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "#upper", cfg.Slack.Channel)
	assert.Equal(t, "http://hive.upper:9000", cfg.Hive.URL)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("slackChannel", "#override")
	t.Setenv("HIVE_TZ_TEST", "UTC")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `server:
  addr: ":8080"
slack:
  channel: "#from-file"
  timeout: 7s
hive:
  url: http://hive.internal:9000
  timezone: ${HIVE_TZ_TEST}
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "#override", cfg.Slack.Channel)
	assert.Equal(t, 7*time.Second, cfg.Slack.Timeout)
	assert.Equal(t, "http://hive.internal:9000", cfg.Hive.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadMissingFile(t *testing.T) {
	setRequired(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("orgName", "from-env")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("orgName=from-file\nLOG_LEVEL_FILE_ONLY=warn\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL_FILE_ONLY") })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Org.Name)
	assert.Equal(t, "warn", os.Getenv("LOG_LEVEL_FILE_ONLY"))
}

func TestInvalidTimezone(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}
