package inbox

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/inbox Repository

import "context"

// Repository remembers which envelopes a node already handled
type Repository interface {
	// MarkSeen records an envelope id and reports whether it was new
	MarkSeen(ctx context.Context, input *MarkSeenInput) (*MarkSeenOutput, error)
}

type MarkSeenInput struct {
	EnvelopeID string
}

type MarkSeenOutput struct {
	// First is false when the id was already recorded
	First bool
}
