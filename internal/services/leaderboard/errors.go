package leaderboard

// LeaderboardError is a custom error type for leaderboard configuration errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     LeaderboardError = "config cannot be nil"
	ErrNilStatsRepo  LeaderboardError = "stats repository cannot be nil"
	ErrNilPlayerRepo LeaderboardError = "player repository cannot be nil"
	ErrNilClock      LeaderboardError = "clock cannot be nil"
	ErrInvalidSize   LeaderboardError = "leaderboard size cannot be negative"
)
