package query

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	archiveRepo "github.com/KirkDiggler/roshambo/internal/repositories/archive"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	roomRepo "github.com/KirkDiggler/roshambo/internal/repositories/room"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
)

// ConfigSource reports the node's current configuration
type ConfigSource interface {
	NodeConfig() models.NodeConfig
}

// Visibility filters the available room list
type Visibility string

const (
	VisibilityAll     Visibility = ""
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Config holds configuration for the query service
type Config struct {
	RoomRepo    roomRepo.Repository
	NodeRepo    nodeRepo.Repository
	Leaderboard leaderboard.Service
	Directory   directory.Service
	Node        ConfigSource

	// Archive is optional; History fails with ErrArchiveDisabled without it
	Archive archiveRepo.Repository

	Logger *zap.Logger
}

type AvailableRoomsInput struct {
	Visibility Visibility
}

type ListRoomsInput struct {
}

// RoomsOutput holds rooms ordered by creation time
type RoomsOutput struct {
	Rooms []*models.Room `json:"rooms"`
}

type GetRoomInput struct {
	RoomID string
}

type GetLeaderboardInput struct {
}

type GetLeaderboardOutput struct {
	Entries []models.LeaderboardEntry `json:"entries"`
}

// StatsView is PlayerStats with derived fields
type StatsView struct {
	*models.PlayerStats
	WinRate float64     `json:"win_rate"`
	Tier    models.Tier `json:"tier"`
}

type ListStatsInput struct {
}

type ListStatsOutput struct {
	Stats []StatsView `json:"stats"`
}

type GetStatsInput struct {
	NodeID string
}

type ListPlayersInput struct {
}

type ListPlayersOutput struct {
	Players []*models.Player `json:"players"`
}

type GetPlayerNameInput struct {
	NodeID string
}

type GetPlayerNameOutput struct {
	NodeID string `json:"node_id"`
	Name   string `json:"name"`
}

type GetMeInput struct {
}

type GetMeOutput struct {
	NodeID        string         `json:"node_id"`
	Role          models.Role    `json:"role"`
	CoordinatorID string         `json:"coordinator_id,omitempty"`
	Mirror        *models.Mirror `json:"mirror"`
	Stats         *StatsView     `json:"stats,omitempty"`
}

type GetConfigInput struct {
}

type GetConfigOutput struct {
	Config models.NodeConfig `json:"config"`
	Role   models.Role       `json:"role"`
}

type SummaryInput struct {
}

type SummaryOutput struct {
	TotalRooms    int `json:"total_rooms"`
	ActiveRooms   int `json:"active_rooms"`
	FinishedGames int `json:"finished_games"`
	TotalPlayers  int `json:"total_players"`
}

type HistoryInput struct {
	NodeID string
	Limit  int
}

type HistoryOutput struct {
	Games []*models.Room `json:"games"`
}
