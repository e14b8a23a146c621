package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roshambo/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Repository defines the interface for room persistence on the coordinator
type Repository interface {
	// CreateRoom inserts a new room, failing if the id is taken
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// SaveRoom overwrites a room and keeps the available index in step
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// ListRooms retrieves every room, finished ones included
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)

	// ListAvailable retrieves the discoverable rooms, oldest first
	ListAvailable(ctx context.Context, input *ListAvailableInput) (*ListAvailableOutput, error)
}
