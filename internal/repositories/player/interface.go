package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/player Repository

import "context"

// Repository defines the interface for the player name directory
type Repository interface {
	// SetName stores a display name, replacing any previous one
	SetName(ctx context.Context, input *SetNameInput) error

	// GetName retrieves the display name of one node
	GetName(ctx context.Context, input *GetNameInput) (string, error)

	// GetNames retrieves the display names of several nodes, skipping unnamed ones
	GetNames(ctx context.Context, input *GetNamesInput) (*GetNamesOutput, error)

	// ListPlayers retrieves every directory entry
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
}
