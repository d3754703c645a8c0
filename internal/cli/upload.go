// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
	"github.com/jeranaias/clarilaw-tui/internal/ui/uploadview"
	"github.com/jeranaias/clarilaw-tui/internal/upload"
)

// newUploadCmd uploads one document and, when the backend creates a chat
// session for it, offers to open it.
func newUploadCmd(app *App) *cobra.Command {
	var title string
	var open bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a legal document (PDF, DOC, DOCX or TXT, up to 10MB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(app); err != nil {
				return err
			}

			ctrl := upload.NewController(app.Client, app.Config.Upload.MaxFileBytes)
			result, err := runUpload(cmd.Context(), ctrl, args[0], title)
			if err != nil {
				return err
			}

			fmt.Println(styles.RenderSuccess("Uploaded " + result.Upload.Document.Filename))
			if result.Upload.Summary != nil {
				fmt.Printf("Complexity: %d/10 (%s)\n",
					result.Upload.Summary.ComplexityScore, result.Upload.Summary.ComplexityLabel())
			}

			if result.SessionID == "" {
				fmt.Println("No chat session was created; run 'clarilaw sessions' to start one.")
				return nil
			}
			if open {
				return runChat(app, result.SessionID, result)
			}
			fmt.Printf("Chat session ready: clarilaw chat %s\n", result.SessionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "display title (defaults to the filename)")
	cmd.Flags().BoolVar(&open, "open", false, "open the chat session after upload")
	return cmd
}

// runUpload drives the upload, with a live progress bar on a TTY and a
// plain blocking call otherwise.
func runUpload(ctx context.Context, ctrl *upload.Controller, path, title string) (*upload.Result, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ctrl.UploadFile(ctx, path, title, nil)
	}

	view := uploadview.New(ctrl, path, title)
	if _, err := tea.NewProgram(view).Run(); err != nil {
		return nil, err
	}
	if view.Err != nil {
		return nil, view.Err
	}
	return view.Result, nil
}
