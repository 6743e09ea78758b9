package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// UUID generates the ids of proposals and finished games.
// Ids end up in button custom ids and Redis keys, so they are plain hex.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/jetlag/internal/common/uuid UUID
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface with random version 4 UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns 32 lowercase hex characters
func (d *DefaultUUID) NewUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
