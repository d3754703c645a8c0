// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newSessionsCmd lists the user's chat sessions. The backend listing is
// authoritative; when it is unreachable the local cache is shown with a
// note.
func newSessionsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List your chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(app); err != nil {
				return err
			}
			ctx := cmd.Context()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()

			sessions, err := app.Client.ChatHistory(ctx)
			if err == nil {
				if len(sessions) == 0 {
					fmt.Println("No chat sessions yet. Upload a document to start one.")
					return nil
				}
				if limit > 0 && len(sessions) > limit {
					sessions = sessions[:limit]
				}

				fmt.Fprintln(w, "ID\tTITLE\tMESSAGES\tUPDATED")
				for _, s := range sessions {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
						s.ID, s.Title, s.MessageCount, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
				}

				// Refresh cached titles and counts while we have fresh
				// data; opened_at stays put so recency still means
				// "last opened", not "last listed".
				if hist, herr := openHistory(); herr == nil {
					for _, s := range sessions {
						if terr := hist.Refresh(ctx, s); terr != nil {
							log.WithError(terr).Debug("history refresh failed")
							break
						}
					}
					hist.Close()
				}
				return nil
			}

			log.WithError(err).Warn("backend session listing failed, using local cache")

			hist, herr := openHistory()
			if herr != nil {
				return fmt.Errorf("backend unreachable and no local cache: %w", err)
			}
			defer hist.Close()

			entries, herr := hist.Recent(ctx, limit)
			if herr != nil || len(entries) == 0 {
				return fmt.Errorf("backend unreachable: %w", err)
			}

			fmt.Println("Backend unreachable; showing recently opened sessions:")
			fmt.Fprintln(w, "ID\tTITLE\tMESSAGES\tOPENED")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					e.ID, e.Title, e.MessageCount, e.OpenedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum sessions to list")
	return cmd
}
