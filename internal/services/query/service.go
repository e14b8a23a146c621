package query

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	archiveRepo "github.com/KirkDiggler/roshambo/internal/repositories/archive"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	roomRepo "github.com/KirkDiggler/roshambo/internal/repositories/room"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
)

type service struct {
	roomRepo    roomRepo.Repository
	nodeRepo    nodeRepo.Repository
	leaderboard leaderboard.Service
	directory   directory.Service
	node        ConfigSource
	archive     archiveRepo.Repository
	logger      *zap.Logger
}

// New creates a new query service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.NodeRepo == nil {
		return nil, ErrNilNodeRepo
	}
	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}
	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}
	if cfg.Node == nil {
		return nil, ErrNilConfigSource
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		roomRepo:    cfg.RoomRepo,
		nodeRepo:    cfg.NodeRepo,
		leaderboard: cfg.Leaderboard,
		directory:   cfg.Directory,
		node:        cfg.Node,
		archive:     cfg.Archive,
		logger:      logger,
	}, nil
}

func newStatsView(stats *models.PlayerStats) StatsView {
	return StatsView{PlayerStats: stats, WinRate: stats.WinRate(), Tier: stats.Tier()}
}

// AvailableRooms filters the discoverable list. Private rooms never enter
// that list, so the private filter is always empty.
func (s *service) AvailableRooms(ctx context.Context, input *AvailableRoomsInput) (*RoomsOutput, error) {
	visibility := VisibilityAll
	if input != nil {
		visibility = input.Visibility
	}

	switch visibility {
	case VisibilityAll, VisibilityPublic, VisibilityPrivate:
	default:
		return nil, ErrInvalidVisibility
	}

	out, err := s.roomRepo.ListAvailable(ctx, &roomRepo.ListAvailableInput{})
	if err != nil {
		return nil, err
	}

	rooms := make([]*models.Room, 0, len(out.Rooms))
	for _, room := range out.Rooms {
		switch {
		case visibility == VisibilityPublic && room.Private:
		case visibility == VisibilityPrivate && !room.Private:
		default:
			rooms = append(rooms, room)
		}
	}

	return &RoomsOutput{Rooms: rooms}, nil
}

func (s *service) ListRooms(ctx context.Context, _ *ListRoomsInput) (*RoomsOutput, error) {
	out, err := s.roomRepo.ListRooms(ctx, &roomRepo.ListRoomsInput{})
	if err != nil {
		return nil, err
	}

	return &RoomsOutput{Rooms: out.Rooms}, nil
}

func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrEmptyRoomID
	}

	return s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
}

func (s *service) GetLeaderboard(ctx context.Context, _ *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	out, err := s.leaderboard.GetLeaderboard(ctx, &leaderboard.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Entries: out.Entries}, nil
}

func (s *service) ListStats(ctx context.Context, _ *ListStatsInput) (*ListStatsOutput, error) {
	out, err := s.leaderboard.ListPlayerStats(ctx, &leaderboard.ListPlayerStatsInput{})
	if err != nil {
		return nil, err
	}

	views := make([]StatsView, 0, len(out.Stats))
	for _, stats := range out.Stats {
		views = append(views, newStatsView(stats))
	}

	return &ListStatsOutput{Stats: views}, nil
}

func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*StatsView, error) {
	if input == nil || input.NodeID == "" {
		return nil, ErrEmptyNodeID
	}

	stats, err := s.leaderboard.GetPlayerStats(ctx, &leaderboard.GetPlayerStatsInput{NodeID: input.NodeID})
	if err != nil {
		return nil, err
	}

	view := newStatsView(stats)
	return &view, nil
}

func (s *service) ListPlayers(ctx context.Context, _ *ListPlayersInput) (*ListPlayersOutput, error) {
	out, err := s.directory.ListNames(ctx, &directory.ListNamesInput{})
	if err != nil {
		return nil, err
	}

	return &ListPlayersOutput{Players: out.Players}, nil
}

func (s *service) GetPlayerName(ctx context.Context, input *GetPlayerNameInput) (*GetPlayerNameOutput, error) {
	if input == nil || input.NodeID == "" {
		return nil, ErrEmptyNodeID
	}

	out, err := s.directory.GetName(ctx, &directory.GetNameInput{NodeID: input.NodeID})
	if err != nil {
		return nil, err
	}

	return &GetPlayerNameOutput{NodeID: input.NodeID, Name: out.Name}, nil
}

func (s *service) GetMe(ctx context.Context, _ *GetMeInput) (*GetMeOutput, error) {
	cfg := s.node.NodeConfig()

	mirror, err := s.nodeRepo.GetMirror(ctx, &nodeRepo.GetMirrorInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load mirror: %w", err)
	}

	out := &GetMeOutput{
		NodeID:        cfg.NodeID,
		Role:          cfg.Role(),
		CoordinatorID: cfg.CoordinatorID,
		Mirror:        mirror,
	}
	if mirror.MyStats != nil {
		view := newStatsView(mirror.MyStats)
		out.Stats = &view
	}

	return out, nil
}

func (s *service) GetConfig(_ context.Context, _ *GetConfigInput) (*GetConfigOutput, error) {
	cfg := s.node.NodeConfig()
	return &GetConfigOutput{Config: cfg, Role: cfg.Role()}, nil
}

func (s *service) Summary(ctx context.Context, _ *SummaryInput) (*SummaryOutput, error) {
	rooms, err := s.roomRepo.ListRooms(ctx, &roomRepo.ListRoomsInput{})
	if err != nil {
		return nil, err
	}

	available, err := s.roomRepo.ListAvailable(ctx, &roomRepo.ListAvailableInput{})
	if err != nil {
		return nil, err
	}

	stats, err := s.leaderboard.ListPlayerStats(ctx, &leaderboard.ListPlayerStatsInput{})
	if err != nil {
		return nil, err
	}

	out := &SummaryOutput{
		TotalRooms:   len(rooms.Rooms),
		ActiveRooms:  len(available.Rooms),
		TotalPlayers: len(stats.Stats),
	}
	for _, room := range rooms.Rooms {
		if room.Result.IsFinished {
			out.FinishedGames++
		}
	}

	return out, nil
}

func (s *service) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if input == nil || input.NodeID == "" {
		return nil, ErrEmptyNodeID
	}

	out, err := s.archive.ListGames(ctx, &archiveRepo.ListGamesInput{NodeID: input.NodeID, Limit: input.Limit})
	if err != nil {
		return nil, err
	}

	return &HistoryOutput{Games: out.Games}, nil
}
