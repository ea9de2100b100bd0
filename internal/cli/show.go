package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions, open ServiceOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one match with its set scores and stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withService(rootOpts, open, func(svc history.Service) error {
				output, err := svc.GetMatch(context.Background(), &history.GetMatchInput{ID: id})
				if err != nil {
					return lookupError(id, err)
				}

				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Print(output.Record, func(w io.Writer) error {
					return writeRecord(w, output.Record)
				})
			})
		},
	}
}

// parseID reads a match ID argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid match id %q", arg), err)
	}
	return id, nil
}

// lookupError maps a missing match to ExitFailure
func lookupError(id int64, err error) error {
	if errors.Is(err, history.ErrMatchNotFound) {
		return NewExitError(ExitFailure, fmt.Sprintf("match %d not found", id))
	}
	return err
}
