package directory

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roshambo/internal/services/directory Service

import (
	"context"
)

// Service maps node identities to display names
type Service interface {
	// SetName stores the local node's name and replicates it to the coordinator
	SetName(ctx context.Context, input *SetNameInput) (*SetNameOutput, error)

	// RecordName writes a directory entry on the coordinator
	RecordName(ctx context.Context, input *RecordNameInput) error

	// GetName looks up one node's display name
	GetName(ctx context.Context, input *GetNameInput) (*GetNameOutput, error)

	// ListNames returns every directory entry
	ListNames(ctx context.Context, input *ListNamesInput) (*ListNamesOutput, error)
}
