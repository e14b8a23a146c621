package models

// LeaderboardSize is the default number of entries kept on the global leaderboard
const LeaderboardSize = 100

// LeaderboardEntry is one row of the global leaderboard, derived from PlayerStats
type LeaderboardEntry struct {
	NodeID     string `json:"node_id"`
	PlayerName string `json:"player_name,omitempty"`
	Wins       int64  `json:"wins"`
	Losses     int64  `json:"losses"`
	TotalGames int64  `json:"total_games"`
}

// NewLeaderboardEntry projects stats into a leaderboard row
func NewLeaderboardEntry(stats *PlayerStats, name string) LeaderboardEntry {
	return LeaderboardEntry{
		NodeID:     stats.NodeID,
		PlayerName: name,
		Wins:       stats.GamesWon,
		Losses:     stats.GamesLost,
		TotalGames: stats.GamesPlayed,
	}
}

// WinRate returns wins over total games, 0 when no games were played
func (e LeaderboardEntry) WinRate() float64 {
	if e.TotalGames == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.TotalGames)
}
