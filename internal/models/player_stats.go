package models

import (
	"time"
)

// PlayerStats tracks a node's game history on the coordinator
type PlayerStats struct {
	// NodeID is the node identity the stats belong to
	NodeID string `json:"node_id"`

	GamesPlayed int64 `json:"games_played"`
	GamesWon    int64 `json:"games_won"`
	GamesLost   int64 `json:"games_lost"`

	// CurrentStreak is the number of consecutive wins, reset on a loss
	CurrentStreak int64 `json:"current_streak"`

	// BestStreak is the highest CurrentStreak ever observed
	BestStreak int64 `json:"best_streak"`

	// LastGameAt is when the last game was recorded
	LastGameAt time.Time `json:"last_game_at"`
}

// NewPlayerStats returns empty stats for nodeID
func NewPlayerStats(nodeID string) *PlayerStats {
	return &PlayerStats{NodeID: nodeID}
}

// AddGame records one finished game
func (p *PlayerStats) AddGame(won bool, at time.Time) {
	p.GamesPlayed++
	p.LastGameAt = at

	if won {
		p.GamesWon++
		p.CurrentStreak++
		if p.CurrentStreak > p.BestStreak {
			p.BestStreak = p.CurrentStreak
		}
		return
	}

	p.GamesLost++
	p.CurrentStreak = 0
}

// WinRate returns the fraction of games won, 0 when no games were played
func (p *PlayerStats) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed)
}

// Tier is a coarse skill label derived from total wins
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierExpert       Tier = "expert"
	TierMaster       Tier = "master"
)

// Tier buckets the node by games won
func (p *PlayerStats) Tier() Tier {
	switch {
	case p.GamesWon >= 100:
		return TierMaster
	case p.GamesWon >= 50:
		return TierExpert
	case p.GamesWon >= 20:
		return TierAdvanced
	case p.GamesWon >= 5:
		return TierIntermediate
	}
	return TierBeginner
}
