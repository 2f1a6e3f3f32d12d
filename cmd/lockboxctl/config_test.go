package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConsoleConfig_AllKeys(t *testing.T) {
	path := writeConfig(t, `
host = "10.0.0.5"
port = 2000
dial_timeout_ms = 3000
read_timeout_ms = 1500
settle_delay_ms = 250
retry_delay_ms = 400
poll_window_ms = 80
channel_count = 2
verbose = true
`)

	cfg, err := loadConsoleConfig(path, consoleConfig{})
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, 2000, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.DialTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.ReadTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 400*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 80*time.Millisecond, cfg.PollWindow)
	assert.Equal(t, 2, cfg.ChannelCount)
	assert.True(t, cfg.Verbose)
}

// Keys absent from the file leave the incoming values alone.
func TestLoadConsoleConfig_PartialOverlay(t *testing.T) {
	path := writeConfig(t, `host = "lockbox.lab"`)

	base := consoleConfig{
		Port:        2000,
		SettleDelay: 100 * time.Millisecond,
	}
	cfg, err := loadConsoleConfig(path, base)
	require.NoError(t, err)

	assert.Equal(t, "lockbox.lab", cfg.Host)
	assert.Equal(t, 2000, cfg.Port)
	assert.Equal(t, 100*time.Millisecond, cfg.SettleDelay)
	assert.False(t, cfg.Verbose)
}

func TestLoadConsoleConfig_MissingHost(t *testing.T) {
	path := writeConfig(t, `port = 2000`)

	_, err := loadConsoleConfig(path, consoleConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
}

func TestLoadConsoleConfig_BadFile(t *testing.T) {
	_, err := loadConsoleConfig(filepath.Join(t.TempDir(), "missing.toml"), consoleConfig{})
	require.Error(t, err)
}
