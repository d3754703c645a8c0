// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli defines the clarilaw command tree.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/clarilaw-tui/internal/api"
	"github.com/jeranaias/clarilaw-tui/internal/auth"
	"github.com/jeranaias/clarilaw-tui/internal/config"
	"github.com/jeranaias/clarilaw-tui/internal/history"
	"github.com/jeranaias/clarilaw-tui/internal/logging"
)

// Version is stamped at build time.
var Version = "dev"

// App carries the shared dependencies every command uses.
type App struct {
	Config *config.Config
	Client *api.Client
	Store  *auth.Store

	watcher *config.Watcher
}

// newClient builds the backend client from config with the auth store
// as token source.
func newClient(cfg *config.Config, store *auth.Store) *api.Client {
	return api.NewClient(cfg.Backend.BaseURL).
		WithTokenSource(store).
		WithMaxRetries(cfg.Backend.MaxRetries).
		WithRateLimit(cfg.Backend.RequestsPerSecond).
		WithTimeout(cfg.Timeout())
}

// openHistory opens the local session cache. Failures are not fatal:
// commands fall back to backend-only listings.
func openHistory() (*history.Store, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return history.Open(filepath.Join(dir, "history.db"))
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}
	var configPath string

	root := &cobra.Command{
		Use:     "clarilaw",
		Short:   "Understand legal documents in plain language",
		Long:    "clarilaw uploads legal documents, shows AI-generated plain-language summaries,\nand answers questions about them in an interactive chat.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			config.SetGlobal(cfg)

			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			logging.Setup(dir, cfg.Log.Level)

			store, err := auth.NewStore(dir)
			if err != nil {
				return fmt.Errorf("failed to open auth state: %w", err)
			}

			app.Config = cfg
			app.Store = store
			app.Client = newClient(cfg, store)
			app.watcher = startWatcher()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.watcher != nil {
				app.watcher.Close()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newUploadCmd(app),
		newSessionsCmd(app),
		newChatCmd(app),
		newConfigCmd(app),
	)
	return root
}

// startWatcher begins hot-reloading the global config on file changes.
// Watch failures are not fatal; the process just keeps its startup
// config.
func startWatcher() *config.Watcher {
	w, err := config.NewWatcher(2 * time.Second)
	if err != nil {
		log.WithError(err).Debug("config watcher unavailable")
		return nil
	}
	if err := w.Watch(); err != nil {
		log.WithError(err).Debug("config watch failed")
		w.Close()
		return nil
	}
	return w
}

// loadConfig loads from an explicit path or the default location.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	cfg := config.Default()
	if err := config.LoadFrom(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireLogin fails fast when no token is stored.
func requireLogin(app *App) error {
	if !app.Store.IsLoggedIn() {
		return fmt.Errorf("not signed in; run 'clarilaw login' first")
	}
	return nil
}
