package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/deuce/internal/cli"
	"github.com/KirkDiggler/deuce/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}

	cmd := cli.NewRootCommand(&cli.RootOptions{
		Backend:       cfg.StoreBackend,
		SQLitePath:    cfg.SQLitePath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		Logger:        config.NewLogger(os.Stderr, cfg.LogLevel),
	})

	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
