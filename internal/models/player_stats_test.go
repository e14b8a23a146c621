package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayerStatsAddGame(t *testing.T) {
	at := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	stats := NewPlayerStats("A")

	results := []bool{true, true, false, true, true, true, false}
	for i, won := range results {
		stats.AddGame(won, at.Add(time.Duration(i)*time.Minute))
		assert.Equal(t, stats.GamesWon+stats.GamesLost, stats.GamesPlayed)
	}

	assert.Equal(t, int64(7), stats.GamesPlayed)
	assert.Equal(t, int64(5), stats.GamesWon)
	assert.Equal(t, int64(2), stats.GamesLost)
	assert.Equal(t, int64(0), stats.CurrentStreak)
	assert.Equal(t, int64(3), stats.BestStreak)
	assert.Equal(t, at.Add(6*time.Minute), stats.LastGameAt)
	assert.InDelta(t, 5.0/7.0, stats.WinRate(), 1e-9)
}

func TestWinRateWithoutGames(t *testing.T) {
	assert.Zero(t, NewPlayerStats("A").WinRate())
	assert.Zero(t, LeaderboardEntry{}.WinRate())
}

func TestTier(t *testing.T) {
	cases := []struct {
		won  int64
		want Tier
	}{
		{0, TierBeginner},
		{4, TierBeginner},
		{5, TierIntermediate},
		{20, TierAdvanced},
		{49, TierAdvanced},
		{50, TierExpert},
		{100, TierMaster},
	}

	for _, tc := range cases {
		stats := &PlayerStats{NodeID: "a", GamesWon: tc.won, GamesPlayed: tc.won}
		assert.Equal(t, tc.want, stats.Tier(), "won %d", tc.won)
	}
}
