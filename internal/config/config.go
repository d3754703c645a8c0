// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for clarilaw.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides, loaded from ~/.clarilaw/config.toml.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete clarilaw configuration.
type Config struct {
	Version string `toml:"version"`

	// Backend configuration
	Backend BackendConfig `toml:"backend"`

	// Upload configuration
	Upload UploadConfig `toml:"upload"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Logging configuration
	Log LogConfig `toml:"log"`
}

// BackendConfig describes the document-explanation backend.
type BackendConfig struct {
	// BaseURL is the backend API base, including the /api/v1 prefix.
	// The upload flow and the session flow historically disagreed on the
	// port (8080 vs 8000); the FastAPI service listens on 8000, which is
	// the single authoritative default here.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
	// MaxRetries is the retry budget for transient (5xx/429) failures.
	MaxRetries int `toml:"max_retries"`
	// DownloadExpirationMinutes is requested for time-limited PDF URLs.
	DownloadExpirationMinutes int `toml:"download_expiration_minutes"`
	// RequestsPerSecond paces outgoing API calls (0 = unpaced).
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// UploadConfig bounds client-side upload validation.
type UploadConfig struct {
	// MaxFileBytes is the upload size ceiling (default 10 MiB).
	MaxFileBytes int64 `toml:"max_file_bytes"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// MouseEnabled turns on mouse capture for pane resizing.
	MouseEnabled bool `toml:"mouse_enabled"`
	// MessageLimit is how many messages to request on session load.
	MessageLimit int `toml:"message_limit"`
}

// LogConfig controls diagnostics logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			BaseURL:                   "http://localhost:8000/api/v1",
			TimeoutSecs:               60,
			MaxRetries:                3,
			DownloadExpirationMinutes: 60,
			RequestsPerSecond:         5,
		},
		Upload: UploadConfig{
			MaxFileBytes: 10 * 1024 * 1024,
		},
		UI: UIConfig{
			MouseEnabled: true,
			MessageLimit: 100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the clarilaw configuration directory (~/.clarilaw).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".clarilaw"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when the file is absent. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadFrom(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFrom decodes TOML from path into cfg.
func LoadFrom(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// Save writes the configuration to the config file with 0600 permissions.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// =============================================================================
// ENV OVERRIDES / VALIDATION
// =============================================================================

// ApplyEnvOverrides applies CLARILAW_* environment variables over the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CLARILAW_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("CLARILAW_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CLARILAW_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Backend.TimeoutSecs = n
		}
	}
	if v := os.Getenv("CLARILAW_MOUSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.MouseEnabled = b
		}
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("backend.base_url must be an absolute URL")
	}
	if c.Backend.TimeoutSecs <= 0 {
		return errors.New("backend.timeout_secs must be positive")
	}
	if c.Backend.MaxRetries < 0 {
		return errors.New("backend.max_retries must not be negative")
	}
	if c.Upload.MaxFileBytes <= 0 {
		return errors.New("upload.max_file_bytes must be positive")
	}
	if c.UI.MessageLimit <= 0 {
		return errors.New("ui.message_limit must be positive")
	}
	return nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// =============================================================================
// GLOBAL INSTANCE
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide configuration, loading it on first use.
// Load errors fall back to defaults; callers needing the error should call
// Load directly.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide configuration. Used by the config
// watcher on reload and by tests.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}
