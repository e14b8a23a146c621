package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roshambo/internal/services/leaderboard Service

import (
	"context"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Service maintains player statistics and the global leaderboard on the coordinator
type Service interface {
	// RecordResult adds one finished game to a node's stats and rebuilds the leaderboard
	RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error)

	// RebuildLeaderboard recomputes the leaderboard from every stats entry
	RebuildLeaderboard(ctx context.Context, input *RebuildLeaderboardInput) (*RebuildLeaderboardOutput, error)

	// GetLeaderboard returns the stored leaderboard
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetPlayerStats returns one node's stats
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// ListPlayerStats returns every stats entry
	ListPlayerStats(ctx context.Context, input *ListPlayerStatsInput) (*ListPlayerStatsOutput, error)
}
