package node

import "github.com/KirkDiggler/roshambo/internal/models"

// NodeError represents an error constructing or running a node
type NodeError string

func (e NodeError) Error() string { return string(e) }

const (
	ErrNilConfig    NodeError = "config cannot be nil"
	ErrEmptyNodeID  NodeError = "node id cannot be empty"
	ErrNilNodeRepo  NodeError = "node repository cannot be nil"
	ErrNilGame      NodeError = "game service cannot be nil"
	ErrNilDirectory NodeError = "directory service cannot be nil"
	ErrNilRouter    NodeError = "message router cannot be nil"
	ErrNilPoster    NodeError = "poster cannot be nil"
	ErrNotStarted   NodeError = "node not started"
	ErrStopped      NodeError = "node stopped"
)

const (
	ErrEmptyCoordinator = models.InvalidInputError("coordinator id cannot be empty")
	ErrEmptyRoomID      = models.InvalidInputError("room id cannot be empty")
	ErrInvalidChoice    = models.InvalidInputError("invalid choice")
	ErrUnknownCommand   = models.InvalidInputError("unknown command")
)
