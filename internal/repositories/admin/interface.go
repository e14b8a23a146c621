package admin

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/admin Repository

import "context"

// Repository performs maintenance spanning several coordinator tables
type Repository interface {
	// ResetCoordinator clears rooms, the available index, stats and the
	// leaderboard together. The player directory is kept.
	ResetCoordinator(ctx context.Context, input *ResetCoordinatorInput) (*ResetCoordinatorOutput, error)
}

type ResetCoordinatorInput struct {
}

type ResetCoordinatorOutput struct {
	RoomsDeleted int
	StatsDeleted int
}
