package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/spf13/cobra"
)

// DeleteResult is the JSON output of the delete command.
type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions, open ServiceOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a match from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withService(rootOpts, open, func(svc history.Service) error {
				ctx := context.Background()

				// The history ignores unknown IDs; look first so the user hears about it
				if _, err := svc.GetMatch(ctx, &history.GetMatchInput{ID: id}); err != nil {
					return lookupError(id, err)
				}

				if err := svc.DeleteMatch(ctx, &history.DeleteMatchInput{ID: id}); err != nil {
					return err
				}

				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Print(DeleteResult{ID: id, Deleted: true}, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "Deleted match %d\n", id)
					return err
				})
			})
		},
	}
}
