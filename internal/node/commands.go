package node

import "github.com/KirkDiggler/roshambo/internal/models"

// Command is the closed set of operations a user can issue on a node
type Command interface{ isCommand() }

// SetupLeaderboard fixes the coordinator once
type SetupLeaderboard struct {
	CoordinatorID string
}

// SetPlayerName names the local node
type SetPlayerName struct {
	Name string
}

// CreateRoom opens a room on the coordinator
type CreateRoom struct {
	RoomID  string
	Private bool
}

// JoinRoom asks the coordinator to seat the local node
type JoinRoom struct {
	RoomID string
}

// SubmitChoice sends the local node's hand for the current round
type SubmitChoice struct {
	RoomID string
	Choice models.Choice
}

// ResetLeaderboard clears all coordinator game state
type ResetLeaderboard struct{}

func (SetupLeaderboard) isCommand() {}
func (SetPlayerName) isCommand()    {}
func (CreateRoom) isCommand()       {}
func (JoinRoom) isCommand()         {}
func (SubmitChoice) isCommand()     {}
func (ResetLeaderboard) isCommand() {}

// Result is what a command produced; fields not touched by the command are zero
type Result struct {
	Config *models.NodeConfig
	Room   *models.Room

	// Sent is true when the command emitted a message
	Sent bool

	RoomsDeleted int
	StatsDeleted int
}
