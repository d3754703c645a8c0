// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// newLoginCmd signs in with a Google ID token. The backend exchanges it
// for a session JWT which is stored locally; the display profile is
// decoded from the token's claims.
func newLoginCmd(app *App) *cobra.Command {
	var idToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with Google",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			gcfg, err := app.Client.GetGoogleConfig(ctx)
			if err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}

			if idToken == "" {
				fmt.Printf("Sign in at %s using OAuth client %s,\nthen paste the Google ID token below.\n\n",
					app.Config.Backend.BaseURL, gcfg.ClientID)
				idToken, err = promptSecret("ID token: ")
				if err != nil {
					return err
				}
			}
			idToken = strings.TrimSpace(idToken)
			if idToken == "" {
				return fmt.Errorf("no token provided")
			}

			result, err := app.Client.GoogleLogin(ctx, idToken)
			if err != nil {
				return fmt.Errorf("login rejected: %w", err)
			}

			if err := app.Store.SaveUserAndToken(result.AccessToken); err != nil {
				return err
			}

			name := result.User.FullName
			if name == "" {
				name = result.User.Email
			}
			fmt.Println(styles.RenderSuccess("Signed in as " + name))
			return nil
		},
	}

	cmd.Flags().StringVar(&idToken, "token", "", "Google ID token (prompted when omitted)")
	return cmd
}

// promptSecret reads one line with line editing, without persisting it
// to any history file.
func promptSecret(prompt string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	text, err := line.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", context.Canceled
		}
		return "", err
	}
	return text, nil
}
