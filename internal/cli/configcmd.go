// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/clarilaw-tui/internal/config"
)

// newConfigCmd inspects and edits the TOML config file.
func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.ConfigPath()
				if err != nil {
					return err
				}
				fmt.Println(path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				val, err := getSetting(app.Config, args[0])
				if err != nil {
					return err
				}
				fmt.Println(val)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one setting and save",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := setSetting(app.Config, args[0], args[1]); err != nil {
					return err
				}
				if err := app.Config.Validate(); err != nil {
					return err
				}
				return config.Save(app.Config)
			},
		},
	)
	return cmd
}

// getSetting reads a dotted key from the config.
func getSetting(cfg *config.Config, key string) (string, error) {
	switch key {
	case "backend.base_url":
		return cfg.Backend.BaseURL, nil
	case "backend.timeout_secs":
		return strconv.Itoa(cfg.Backend.TimeoutSecs), nil
	case "backend.max_retries":
		return strconv.Itoa(cfg.Backend.MaxRetries), nil
	case "upload.max_file_bytes":
		return strconv.FormatInt(cfg.Upload.MaxFileBytes, 10), nil
	case "ui.mouse_enabled":
		return strconv.FormatBool(cfg.UI.MouseEnabled), nil
	case "ui.message_limit":
		return strconv.Itoa(cfg.UI.MessageLimit), nil
	case "log.level":
		return cfg.Log.Level, nil
	default:
		return "", fmt.Errorf("unknown setting %q", key)
	}
}

// setSetting writes a dotted key into the config.
func setSetting(cfg *config.Config, key, value string) error {
	switch key {
	case "backend.base_url":
		cfg.Backend.BaseURL = value
	case "backend.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_secs must be an integer")
		}
		cfg.Backend.TimeoutSecs = n
	case "backend.max_retries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_retries must be an integer")
		}
		cfg.Backend.MaxRetries = n
	case "upload.max_file_bytes":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("max_file_bytes must be an integer")
		}
		cfg.Upload.MaxFileBytes = n
	case "ui.mouse_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("mouse_enabled must be true or false")
		}
		cfg.UI.MouseEnabled = b
	case "ui.message_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("message_limit must be an integer")
		}
		cfg.UI.MessageLimit = n
	case "log.level":
		cfg.Log.Level = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
