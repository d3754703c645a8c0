// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("default base URL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Upload.MaxFileBytes != 10*1024*1024 {
		t.Errorf("default upload ceiling = %d, want 10 MiB", cfg.Upload.MaxFileBytes)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative base url", func(c *Config) { c.Backend.BaseURL = "/api/v1" }},
		{"empty base url", func(c *Config) { c.Backend.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.Backend.TimeoutSecs = 0 }},
		{"negative retries", func(c *Config) { c.Backend.MaxRetries = -1 }},
		{"zero upload ceiling", func(c *Config) { c.Upload.MaxFileBytes = 0 }},
		{"zero message limit", func(c *Config) { c.UI.MessageLimit = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CLARILAW_BACKEND_URL", "http://localhost:8080/api/v1")
	t.Setenv("CLARILAW_TIMEOUT_SECS", "30")
	t.Setenv("CLARILAW_MOUSE", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("base URL override not applied: %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.TimeoutSecs != 30 {
		t.Errorf("timeout override not applied: %d", cfg.Backend.TimeoutSecs)
	}
	if cfg.UI.MouseEnabled {
		t.Error("mouse override not applied")
	}
}

func TestLoadFrom_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "1"

[backend]
base_url = "http://example.test:8000/api/v1"
timeout_secs = 15
max_retries = 2
download_expiration_minutes = 30
requests_per_second = 2.0

[upload]
max_file_bytes = 5242880

[ui]
mouse_enabled = true
message_limit = 50

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFrom(cfg, path); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Backend.TimeoutSecs != 15 {
		t.Errorf("timeout = %d, want 15", cfg.Backend.TimeoutSecs)
	}
	if cfg.Upload.MaxFileBytes != 5242880 {
		t.Errorf("ceiling = %d, want 5242880", cfg.Upload.MaxFileBytes)
	}
	if cfg.UI.MessageLimit != 50 {
		t.Errorf("message limit = %d, want 50", cfg.UI.MessageLimit)
	}
}
