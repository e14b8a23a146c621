package game

import (
	"github.com/KirkDiggler/roshambo/internal/models"
	roomRepo "github.com/KirkDiggler/roshambo/internal/repositories/room"
)

// GameError is a custom error type for game service configuration errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Configuration errors
const (
	ErrNilConfig      GameError = "config cannot be nil"
	ErrNilRoomRepo    GameError = "room repository cannot be nil"
	ErrNilPlayerRepo  GameError = "player repository cannot be nil"
	ErrNilAdminRepo   GameError = "admin repository cannot be nil"
	ErrNilLeaderboard GameError = "leaderboard service cannot be nil"
	ErrNilClock       GameError = "clock cannot be nil"
)

// Room errors
const (
	ErrRoomNotFound      = roomRepo.ErrRoomNotFound
	ErrRoomAlreadyExists = roomRepo.ErrRoomAlreadyExists

	ErrRoomFull        models.ConflictError = "room is full"
	ErrAlreadyInRoom   models.ConflictError = "player already in room"
	ErrGameFinished    models.ConflictError = "game is finished"
	ErrPlayerNotInRoom models.ConflictError = "player not in room"

	ErrEmptyRoomID   models.InvalidInputError = "room ID cannot be empty"
	ErrEmptyPlayer   models.InvalidInputError = "player node cannot be empty"
	ErrInvalidChoice models.InvalidInputError = "invalid choice"
)
