package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/deuce/internal/common/uuid UUID

// UUID generates identifiers for live matches
type UUID interface {
	NewUUID() string
}

// DefaultUUID hands out version 7 UUIDs so match IDs sort by creation time
type DefaultUUID struct{}

// New returns the default UUID generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new time-ordered UUID, or a random one if the
// generator cannot read the clock
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
