package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions, open ServiceOpener) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List completed matches, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return NewExitError(ExitCommandError, "--limit cannot be negative")
			}

			return withService(rootOpts, open, func(svc history.Service) error {
				output, err := svc.ListMatches(context.Background(), &history.ListMatchesInput{
					Limit: limit,
				})
				if err != nil {
					return err
				}

				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Print(output.Records, func(w io.Writer) error {
					if len(output.Records) == 0 {
						_, err := fmt.Fprintln(w, "No matches recorded yet.")
						return err
					}
					for _, record := range output.Records {
						if _, err := fmt.Fprintln(w, summaryLine(record)); err != nil {
							return err
						}
					}
					return nil
				})
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many matches (0 for all)")

	return cmd
}
