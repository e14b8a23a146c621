package node

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/node Repository

import (
	"context"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Repository persists a node's own configuration and mirror
type Repository interface {
	// GetConfig retrieves the stored configuration
	GetConfig(ctx context.Context, input *GetConfigInput) (*models.NodeConfig, error)

	// SetupConfig stores the configuration once
	SetupConfig(ctx context.Context, input *SetupConfigInput) error

	// GetMirror retrieves the local mirror, empty if nothing was folded yet
	GetMirror(ctx context.Context, input *GetMirrorInput) (*models.Mirror, error)

	// SaveMirror persists the mirror, at most once per dedup key when one is given
	SaveMirror(ctx context.Context, input *SaveMirrorInput) error
}
