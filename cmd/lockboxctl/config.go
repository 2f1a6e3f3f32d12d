package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// lockboxctl config.toml key mapping to client settings.
type fileConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	DialTimeoutMS int    `toml:"dial_timeout_ms"`
	ReadTimeoutMS int    `toml:"read_timeout_ms"`
	SettleMS      int    `toml:"settle_delay_ms"`
	RetryMS       int    `toml:"retry_delay_ms"`
	PollMS        int    `toml:"poll_window_ms"`
	ChannelCount  int    `toml:"channel_count"`
	Verbose       bool   `toml:"verbose"`
}

// consoleConfig is the resolved configuration for one lockboxctl session.
type consoleConfig struct {
	Host         string
	Port         int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	SettleDelay  time.Duration
	RetryDelay   time.Duration
	PollWindow   time.Duration
	ChannelCount int
	Verbose      bool
}

// loadConsoleConfig overlays a TOML file onto cfg. Only keys present in the
// file override; flags applied afterwards win over both.
func loadConsoleConfig(path string, cfg consoleConfig) (consoleConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return consoleConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("dial_timeout_ms") {
		cfg.DialTimeout = time.Duration(raw.DialTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("read_timeout_ms") {
		cfg.ReadTimeout = time.Duration(raw.ReadTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("settle_delay_ms") {
		cfg.SettleDelay = time.Duration(raw.SettleMS) * time.Millisecond
	}
	if meta.IsDefined("retry_delay_ms") {
		cfg.RetryDelay = time.Duration(raw.RetryMS) * time.Millisecond
	}
	if meta.IsDefined("poll_window_ms") {
		cfg.PollWindow = time.Duration(raw.PollMS) * time.Millisecond
	}
	if meta.IsDefined("channel_count") {
		cfg.ChannelCount = raw.ChannelCount
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	if cfg.Host == "" {
		return consoleConfig{}, fmt.Errorf("config %s: host is required", path)
	}
	return cfg, nil
}
