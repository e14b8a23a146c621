package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roshambo/internal/services/messaging Service

import "context"

// Service applies inbound envelopes to the local node
type Service interface {
	// Handle applies one envelope and reports what became of it
	Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error)
}
