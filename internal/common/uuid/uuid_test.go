package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID_IsVersion7(t *testing.T) {
	gen := New()

	first, err := uuid.Parse(gen.NewUUID())
	require.NoError(t, err)
	second, err := uuid.Parse(gen.NewUUID())
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first.String()[:8], second.String()[:8])
}
