// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// newLogoutCmd clears the local session. The backend is notified on a
// best-effort basis; the local token and profile are removed regardless.
func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store.IsLoggedIn() {
				if err := app.Client.Logout(cmd.Context()); err != nil {
					log.WithError(err).Debug("backend logout failed")
				}
			}

			if err := app.Store.Logout(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			if hist, err := openHistory(); err == nil {
				if err := hist.Clear(cmd.Context()); err != nil {
					log.WithError(err).Debug("history clear failed")
				}
				hist.Close()
			}

			fmt.Println(styles.RenderSuccess("Signed out"))
			return nil
		},
	}
}
