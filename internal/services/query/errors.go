package query

import "github.com/KirkDiggler/roshambo/internal/models"

// QueryError represents an error in the query service configuration
type QueryError string

func (e QueryError) Error() string { return string(e) }

const (
	ErrNilConfig       QueryError = "config cannot be nil"
	ErrNilRoomRepo     QueryError = "room repository cannot be nil"
	ErrNilNodeRepo     QueryError = "node repository cannot be nil"
	ErrNilLeaderboard  QueryError = "leaderboard service cannot be nil"
	ErrNilDirectory    QueryError = "directory service cannot be nil"
	ErrNilConfigSource QueryError = "config source cannot be nil"
)

const (
	ErrInvalidVisibility = models.InvalidInputError("visibility must be public or private")
	ErrEmptyRoomID       = models.InvalidInputError("room id cannot be empty")
	ErrEmptyNodeID       = models.InvalidInputError("node id cannot be empty")
	ErrArchiveDisabled   = models.NotFoundError("game archive is not enabled")
)
