package record_store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLite_Validation(t *testing.T) {
	_, err := NewSQLite(nil)
	assert.Error(t, err)

	_, err = NewSQLite(&SQLiteConfig{})
	assert.Error(t, err)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewSQLite(&SQLiteConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "tennis_match_history", []byte(`[{"id":7}]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLite(&SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "tennis_match_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":7}]`, string(value))
}
