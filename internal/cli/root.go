package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/KirkDiggler/deuce/internal/common/clock"
	"github.com/KirkDiggler/deuce/internal/services/history"
	"github.com/KirkDiggler/deuce/internal/storage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format        string // "json" | "text"
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string

	// Logger receives storage warnings; defaults to a discard logger
	Logger *log.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ServiceOpener builds the history service for a command run. The returned
// func releases whatever the service holds open.
type ServiceOpener func(opts *RootOptions) (history.Service, func() error, error)

// NewRootCommand creates the root command, taking flag defaults from defaults.
func NewRootCommand(defaults *RootOptions) *cobra.Command {
	return newRootCommand(defaults, openHistory)
}

func newRootCommand(defaults *RootOptions, open ServiceOpener) *cobra.Command {
	opts := &RootOptions{}
	if defaults != nil {
		*opts = *defaults
	}
	if opts.Format == "" {
		opts.Format = "text"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cmd := &cobra.Command{
		Use:   "deuce-history",
		Short: "Browse and manage completed tennis matches",
		Long:  "Reads the match history the deuce bot writes: list, inspect and delete matches, and look up player records.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", opts.Backend, "store backend (redis|sqlite|memory)")
	cmd.PersistentFlags().StringVar(&opts.SQLitePath, "sqlite-path", opts.SQLitePath, "database file for the sqlite backend")
	cmd.PersistentFlags().StringVar(&opts.RedisAddr, "redis-addr", opts.RedisAddr, "address for the redis backend")

	cmd.AddCommand(NewListCommand(opts, open))
	cmd.AddCommand(NewShowCommand(opts, open))
	cmd.AddCommand(NewDeleteCommand(opts, open))
	cmd.AddCommand(NewStatsCommand(opts, open))
	cmd.AddCommand(NewProfileCommand(opts, open))

	return cmd
}

// openHistory opens the configured backend and builds a history service on it
func openHistory(opts *RootOptions) (history.Service, func() error, error) {
	stores, err := storage.Open(&storage.Options{
		Backend:       opts.Backend,
		RedisAddr:     opts.RedisAddr,
		RedisPassword: opts.RedisPassword,
		SQLitePath:    opts.SQLitePath,
	})
	if err != nil {
		return nil, nil, err
	}

	svc, err := history.New(&history.Config{
		Store:  stores.Records,
		Clock:  clock.New(),
		Logger: opts.Logger,
	})
	if err != nil {
		stores.Close()
		return nil, nil, err
	}

	return svc, stores.Close, nil
}

// withService runs fn against a freshly opened history service
func withService(opts *RootOptions, open ServiceOpener, fn func(history.Service) error) error {
	svc, closeFn, err := open(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open match history", err)
	}
	defer closeFn()

	return fn(svc)
}
