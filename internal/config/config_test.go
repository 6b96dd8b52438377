package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "hall"
password = "secret"

[timeline]
time_zone = "UTC"
refresh_interval_seconds = 15

[redis]
enabled = true
addr = "redis:6379"
ttl_seconds = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port, "default kept")
	assert.Equal(t, 15*time.Second, cfg.Timeline.RefreshInterval())
	assert.Equal(t, 5*time.Second, cfg.Redis.TTL())
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432")
	assert.Contains(t, cfg.Database.DSN(), "dbname=hall")

	loc, err := cfg.Timeline.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"refresh interval above a minute", "[timeline]\nrefresh_interval_seconds = 90\ntime_zone = \"UTC\""},
		{"unknown time zone", "[timeline]\ntime_zone = \"Mars/Olympus\""},
		{"bad port", "[server]\nhttp_port = 0"},
		{"redis without ttl", "[redis]\nenabled = true\nttl_seconds = 0"},
		{"rate limit without burst", "[rate_limit]\nenabled = true\nburst = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
