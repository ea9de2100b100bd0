package main

import (
	"io"
	"testing"

	"github.com/KirkDiggler/deuce/internal/config"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RequiresToken(t *testing.T) {
	err := run(&config.Config{StoreBackend: "memory"}, log.New(io.Discard))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestRun_StorageErrorIsReturned(t *testing.T) {
	err := run(&config.Config{DiscordToken: "token", StoreBackend: "carrier-pigeon"}, log.New(io.Discard))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open carrier-pigeon storage")
}
