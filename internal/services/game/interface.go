package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roshambo/internal/services/game Service

import "context"

// Service defines the authoritative room operations of the coordinator.
// Every operation takes the caller's node configuration and fails before any
// write unless that node is the configured coordinator.
type Service interface {
	// CreateRoom creates an empty room
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a player in the first open slot
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// SubmitChoice records a player's choice and resolves the round once both chose
	SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error)

	// Reset clears rooms, stats and the leaderboard together
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}
