package leaderboard

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/models"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	statsRepo "github.com/KirkDiggler/roshambo/internal/repositories/stats"
)

// Config holds configuration for the leaderboard service
type Config struct {
	StatsRepo  statsRepo.Repository
	PlayerRepo playerRepo.Repository
	Clock      clock.Clock

	// Size is the number of leaderboard entries kept, 0 uses models.LeaderboardSize
	Size int

	Logger *zap.Logger
}

// RecordResultInput contains parameters for recording one finished game
type RecordResultInput struct {
	NodeID string
	Won    bool

	// At is the completion time, the clock is used when zero
	At time.Time

	// DedupKey, when set, makes the result apply at most once
	DedupKey string
}

// RecordResultOutput contains the updated stats
type RecordResultOutput struct {
	Stats *models.PlayerStats

	// Duplicate is true when the dedup key was already applied; Stats is nil
	Duplicate bool
}

// RebuildLeaderboardInput contains parameters for a leaderboard rebuild
type RebuildLeaderboardInput struct {
}

// RebuildLeaderboardOutput contains the stored leaderboard
type RebuildLeaderboardOutput struct {
	Entries []models.LeaderboardEntry
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
}

// GetLeaderboardOutput contains the leaderboard, best first
type GetLeaderboardOutput struct {
	Entries []models.LeaderboardEntry
}

// GetPlayerStatsInput contains parameters for reading one node's stats
type GetPlayerStatsInput struct {
	NodeID string
}

// ListPlayerStatsInput contains parameters for listing all stats
type ListPlayerStatsInput struct {
}

// ListPlayerStatsOutput contains every stats entry ordered by node id
type ListPlayerStatsOutput struct {
	Stats []*models.PlayerStats
}
