package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/stats Repository

import (
	"context"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Repository defines the interface for player statistics and leaderboard persistence
type Repository interface {
	// GetStats retrieves the stats of one node
	GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error)

	// SaveStats persists stats, at most once per dedup key when one is given
	SaveStats(ctx context.Context, input *SaveStatsInput) error

	// ListStats retrieves every stats entry
	ListStats(ctx context.Context, input *ListStatsInput) (*ListStatsOutput, error)

	// GetLeaderboard retrieves the stored leaderboard
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// SaveLeaderboard replaces the stored leaderboard in one write
	SaveLeaderboard(ctx context.Context, input *SaveLeaderboardInput) error
}
