package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/roshambo/internal/common/uuid UUID

// UUID generates envelope ids
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues version 7 ids, which sort by creation time so inbox
// dedup keys and log lines line up with send order
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new time-ordered id, falling back to a random one if the
// clock sequence cannot be read
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
