package room

import "github.com/KirkDiggler/roshambo/internal/models"

type CreateRoomInput struct {
	Room *models.Room
}

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type ListRoomsInput struct {
}

type ListRoomsOutput struct {
	Rooms []*models.Room
}

type ListAvailableInput struct {
}

type ListAvailableOutput struct {
	Rooms []*models.Room
}
