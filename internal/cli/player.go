package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions, open ServiceOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <player>",
		Short: "Show a player's totals across the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(rootOpts, open, func(svc history.Service) error {
				output, err := svc.GetPlayerStats(context.Background(), &history.GetPlayerStatsInput{
					PlayerName: args[0],
				})
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load player stats", err)
				}

				stats := output.Stats
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Print(stats, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s: %d played, %d won, %d aces, %d winners\n",
						stats.PlayerName, stats.MatchesPlayed, stats.Wins, stats.TotalAces, stats.TotalWinners)
					return err
				})
			})
		},
	}
}

// NewProfileCommand creates the profile command.
func NewProfileCommand(rootOpts *RootOptions, open ServiceOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <player>",
		Short: "Show a player's record, win rate and recent form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(rootOpts, open, func(svc history.Service) error {
				output, err := svc.GetPlayerProfile(context.Background(), &history.GetPlayerProfileInput{
					PlayerName: args[0],
				})
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load player profile", err)
				}

				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Print(output.Profile, func(w io.Writer) error {
					return writeProfile(w, output.Profile)
				})
			})
		},
	}
}
