package query

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roshambo/internal/services/query Service

import (
	"context"

	"github.com/KirkDiggler/roshambo/internal/models"
)

// Service is the read-only projection of a node's state. It never writes.
type Service interface {
	// AvailableRooms lists discoverable rooms, optionally filtered by visibility
	AvailableRooms(ctx context.Context, input *AvailableRoomsInput) (*RoomsOutput, error)

	// ListRooms lists every room the node hosts
	ListRooms(ctx context.Context, input *ListRoomsInput) (*RoomsOutput, error)

	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	ListStats(ctx context.Context, input *ListStatsInput) (*ListStatsOutput, error)

	GetStats(ctx context.Context, input *GetStatsInput) (*StatsView, error)

	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	GetPlayerName(ctx context.Context, input *GetPlayerNameInput) (*GetPlayerNameOutput, error)

	// GetMe returns the local mirror with the node configuration
	GetMe(ctx context.Context, input *GetMeInput) (*GetMeOutput, error)

	GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error)

	// Summary counts rooms, finished games and ranked players
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)

	// History lists archived games a node played, newest first
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)
}
