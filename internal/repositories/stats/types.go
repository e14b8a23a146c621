package stats

import "github.com/KirkDiggler/roshambo/internal/models"

type GetStatsInput struct {
	NodeID string
}

type SaveStatsInput struct {
	Stats *models.PlayerStats

	// DedupKey, when set, is claimed in the same transaction as the write;
	// a claimed key fails the save with ErrAlreadyRecorded
	DedupKey string
}

type ListStatsInput struct {
}

type ListStatsOutput struct {
	Stats []*models.PlayerStats
}

type GetLeaderboardInput struct {
}

type GetLeaderboardOutput struct {
	Entries []models.LeaderboardEntry
}

type SaveLeaderboardInput struct {
	Entries []models.LeaderboardEntry
}
