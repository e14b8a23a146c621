package archive

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/archive Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Repository keeps finished games beyond a coordinator reset
type Repository interface {
	// ArchiveGame upserts a finished room
	ArchiveGame(ctx context.Context, input *ArchiveGameInput) error

	// ListGames retrieves archived games a node played, newest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)
}

type ArchiveGameInput struct {
	Room *models.Room

	// FinishedAt is when the deciding round resolved
	FinishedAt time.Time
}

type ListGamesInput struct {
	NodeID string

	// Limit caps the result, 0 uses the default
	Limit int
}

type ListGamesOutput struct {
	Games []*models.Room
}
