package messaging

// RouterError represents an error in the message router
type RouterError string

func (e RouterError) Error() string { return string(e) }

const (
	ErrNilConfig      RouterError = "config cannot be nil"
	ErrNilGame        RouterError = "game service cannot be nil"
	ErrNilLeaderboard RouterError = "leaderboard service cannot be nil"
	ErrNilDirectory   RouterError = "directory service cannot be nil"
	ErrNilNodeRepo    RouterError = "node repository cannot be nil"
	ErrNilInbox       RouterError = "inbox repository cannot be nil"
	ErrNilPoster      RouterError = "poster cannot be nil"
	ErrNilClock       RouterError = "clock cannot be nil"
	ErrNilEnvelope    RouterError = "envelope cannot be nil"
)
