package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds process settings read from the environment
type Config struct {
	// Discord bot token
	DiscordToken string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Redis connection
	RedisAddr     string
	RedisPassword string

	// StoreBackend selects redis, sqlite or memory storage
	StoreBackend string

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string

	// LogLevel is debug, info, warn or error
	LogLevel string
}

// Load reads the environment after merging any of the given .env files,
// ".env" when none are given. Variables already set win over the files,
// and missing files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		StoreBackend:  getEnv("STORE_BACKEND", "redis"),
		SQLitePath:    getEnv("SQLITE_PATH", "deuce.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}, nil
}

// NewLogger builds the process logger. An unknown level falls back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "deuce",
	})
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
