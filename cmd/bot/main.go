package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/deuce/internal/common/clock"
	"github.com/KirkDiggler/deuce/internal/common/uuid"
	"github.com/KirkDiggler/deuce/internal/config"
	"github.com/KirkDiggler/deuce/internal/handlers/discord"
	"github.com/KirkDiggler/deuce/internal/services/history"
	matchService "github.com/KirkDiggler/deuce/internal/services/match"
	"github.com/KirkDiggler/deuce/internal/services/messaging"
	"github.com/KirkDiggler/deuce/internal/storage"
	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to read .env file", "err", err)
	}

	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot exited with error", "err", err)
	}
}

// run wires the bot and blocks until an interrupt. Returning instead of
// exiting lets the deferred storage close run on every path.
func run(cfg *config.Config, logger *log.Logger) error {
	if cfg.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}

	stores, err := storage.Open(&storage.Options{
		Backend:       cfg.StoreBackend,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		SQLitePath:    cfg.SQLitePath,
	})
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.StoreBackend, err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logger.Error("Error closing storage", "err", err)
		}
	}()

	systemClock := clock.New()

	historySvc, err := history.New(&history.Config{
		Store:  stores.Records,
		Clock:  systemClock,
		Logger: logger.WithPrefix("history"),
	})
	if err != nil {
		return fmt.Errorf("failed to create history service: %w", err)
	}

	matchSvc, err := matchService.New(&matchService.Config{
		MatchRepo:      stores.Matches,
		HistoryService: historySvc,
		Clock:          systemClock,
		UUIDGenerator:  uuid.New(),
		Logger:         logger.WithPrefix("match"),
	})
	if err != nil {
		return fmt.Errorf("failed to create match service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		MatchService:     matchSvc,
		HistoryService:   historySvc,
		MessagingService: messagingSvc,
		Logger:           logger.WithPrefix("discord"),
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot", "err", err)
	}

	logger.Info("Bot has been shut down", "backend", cfg.StoreBackend)
	return nil
}
