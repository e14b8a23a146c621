package game

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/models"
	adminRepo "github.com/KirkDiggler/roshambo/internal/repositories/admin"
	archiveRepo "github.com/KirkDiggler/roshambo/internal/repositories/archive"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/roshambo/internal/repositories/room"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
)

// Config holds configuration for the game service
type Config struct {
	RoomRepo    roomRepo.Repository
	PlayerRepo  playerRepo.Repository
	AdminRepo   adminRepo.Repository
	Leaderboard leaderboard.Service
	Clock       clock.Clock

	// Archive is optional; finished games are not archived when nil
	Archive archiveRepo.Repository

	Logger *zap.Logger
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	// Node is the configuration of the node executing the command
	Node models.NodeConfig

	RoomID  string
	Private bool
}

// CreateRoomOutput contains the new room
type CreateRoomOutput struct {
	Room *models.Room
}

// JoinRoomInput contains parameters for seating a player
type JoinRoomInput struct {
	Node models.NodeConfig

	RoomID string

	// PlayerNode is the identity of the joining node
	PlayerNode string

	// PlayerName is optional; when set it is stored in the directory and the room
	PlayerName string
}

// JoinRoomOutput contains the updated room
type JoinRoomOutput struct {
	Room *models.Room

	// PlayerNumber is the slot the player took, 1 or 2
	PlayerNumber int
}

// SubmitChoiceInput contains parameters for a player's choice
type SubmitChoiceInput struct {
	Node models.NodeConfig

	RoomID     string
	PlayerNode string
	Choice     models.Choice
}

// SubmitChoiceOutput contains the room after the choice
type SubmitChoiceOutput struct {
	Room *models.Room

	// Round is the resolved round, nil while waiting for the other player
	Round *models.RoundHistory

	// Finished is true when this choice decided the game
	Finished bool
}

// ResetInput contains parameters for clearing coordinator state
type ResetInput struct {
	Node models.NodeConfig
}

// ResetOutput reports what a reset removed
type ResetOutput struct {
	RoomsDeleted int
	StatsDeleted int
}
