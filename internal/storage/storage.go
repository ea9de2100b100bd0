// Package storage opens the record store and live match repository for
// the selected backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	matchRepo "github.com/KirkDiggler/deuce/internal/repositories/match"
	"github.com/KirkDiggler/deuce/internal/repositories/record_store"
	"github.com/redis/go-redis/v9"
)

// Supported backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for a backend name Open does not support
var ErrUnknownBackend = errors.New("unknown store backend")

// Options selects and configures a backend
type Options struct {
	// Backend is one of BackendRedis, BackendSQLite or BackendMemory
	Backend string

	// Redis connection for BackendRedis
	RedisAddr     string
	RedisPassword string

	// SQLitePath is the database file for BackendSQLite
	SQLitePath string
}

// Stores holds the opened storage. With the sqlite backend live matches
// stay in memory; only the history is written to disk.
type Stores struct {
	Records record_store.Store
	Matches matchRepo.Repository

	closers []func() error
}

// Open connects the backend named in opts
func Open(opts *Options) (*Stores, error) {
	if opts == nil {
		return nil, errors.New("options cannot be nil")
	}

	switch opts.Backend {
	case BackendRedis:
		return openRedis(opts)
	case BackendSQLite:
		records, err := record_store.NewSQLite(&record_store.SQLiteConfig{
			Path: opts.SQLitePath,
		})
		if err != nil {
			return nil, err
		}
		return &Stores{
			Records: records,
			Matches: matchRepo.NewMemory(),
			closers: []func() error{records.Close},
		}, nil
	case BackendMemory:
		return &Stores{
			Records: record_store.NewMemory(),
			Matches: matchRepo.NewMemory(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func openRedis(opts *Options) (*Stores, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	records, err := record_store.NewRedis(&record_store.Config{
		RedisClient: client,
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: client,
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Stores{
		Records: records,
		Matches: matches,
		closers: []func() error{client.Close},
	}, nil
}

// Close releases every connection Open made
func (s *Stores) Close() error {
	var errs []error
	for _, closer := range s.closers {
		errs = append(errs, closer())
	}
	return errors.Join(errs...)
}
