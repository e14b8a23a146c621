package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/models"
	adminRepo "github.com/KirkDiggler/roshambo/internal/repositories/admin"
	archiveRepo "github.com/KirkDiggler/roshambo/internal/repositories/archive"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/roshambo/internal/repositories/room"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
)

// service implements the Service interface
type service struct {
	roomRepo    roomRepo.Repository
	playerRepo  playerRepo.Repository
	adminRepo   adminRepo.Repository
	leaderboard leaderboard.Service
	archive     archiveRepo.Repository
	clock       clock.Clock
	logger      *zap.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.AdminRepo == nil {
		return nil, ErrNilAdminRepo
	}
	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		roomRepo:    cfg.RoomRepo,
		playerRepo:  cfg.PlayerRepo,
		adminRepo:   cfg.AdminRepo,
		leaderboard: cfg.Leaderboard,
		archive:     cfg.Archive,
		clock:       cfg.Clock,
		logger:      logger,
	}, nil
}

// requireCoordinator aborts commands issued on an unconfigured or participant node
func requireCoordinator(node models.NodeConfig) error {
	if !node.Configured() {
		return models.ErrNotConfigured
	}
	if !node.IsCoordinator() {
		return models.ErrNotCoordinator
	}
	return nil
}

// CreateRoom creates an empty room at round one
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrEmptyRoomID
	}
	if err := requireCoordinator(input.Node); err != nil {
		return nil, err
	}
	if input.RoomID == "" {
		return nil, ErrEmptyRoomID
	}

	room := models.NewRoom(input.RoomID, s.clock.Now(), input.Private)

	if err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room}); err != nil {
		return nil, err
	}

	s.logger.Info("room created",
		zap.String("room_id", room.ID),
		zap.Bool("private", room.Private),
	)

	return &CreateRoomOutput{Room: room}, nil
}

// JoinRoom seats the player in the first open slot. A supplied name is
// recorded in the directory even when the join itself fails.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, ErrEmptyRoomID
	}
	if err := requireCoordinator(input.Node); err != nil {
		return nil, err
	}
	if input.RoomID == "" {
		return nil, ErrEmptyRoomID
	}
	if input.PlayerNode == "" {
		return nil, ErrEmptyPlayer
	}

	if input.PlayerName != "" {
		err := s.playerRepo.SetName(ctx, &playerRepo.SetNameInput{
			NodeID: input.PlayerNode,
			Name:   input.PlayerName,
		})
		if err != nil {
			return nil, err
		}
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	switch {
	case room.Result.IsFinished:
		return nil, ErrGameFinished
	case room.PlayerNumber(input.PlayerNode) != 0:
		return nil, ErrAlreadyInRoom
	case room.IsFull():
		return nil, ErrRoomFull
	}

	if !room.AddPlayer(input.PlayerNode, input.PlayerName) {
		return nil, ErrRoomFull
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	playerNumber := room.PlayerNumber(input.PlayerNode)
	s.logger.Info("player joined room",
		zap.String("room_id", room.ID),
		zap.String("player_node", input.PlayerNode),
		zap.Int("player_number", playerNumber),
		zap.Bool("full", room.IsFull()),
	)

	return &JoinRoomOutput{Room: room, PlayerNumber: playerNumber}, nil
}

// SubmitChoice records the choice and, once both players chose, resolves the
// round in the same step. A deciding round updates the leaderboard for public
// rooms and archives the game.
func (s *service) SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error) {
	if input == nil {
		return nil, ErrEmptyRoomID
	}
	if err := requireCoordinator(input.Node); err != nil {
		return nil, err
	}
	if input.RoomID == "" {
		return nil, ErrEmptyRoomID
	}
	if !input.Choice.IsValid() {
		return nil, ErrInvalidChoice
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	if room.Result.IsFinished {
		return nil, ErrGameFinished
	}

	if !room.SetChoice(input.PlayerNode, input.Choice) {
		return nil, ErrPlayerNotInRoom
	}

	round := room.ResolveRound()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	out := &SubmitChoiceOutput{Room: room, Round: round}
	if round == nil {
		return out, nil
	}

	s.logger.Info("round resolved",
		zap.String("room_id", room.ID),
		zap.Int("round_number", round.RoundNumber),
		zap.String("outcome", string(round.Outcome)),
		zap.Int("player1_wins", room.Result.Player1Wins),
		zap.Int("player2_wins", room.Result.Player2Wins),
		zap.Int("draws", room.Result.Draws),
	)

	if room.Result.IsFinished {
		out.Finished = true
		s.finish(ctx, room)
	}

	return out, nil
}

// finish runs the side effects of a decided game. The room is already
// stored, so failures here are logged rather than returned.
func (s *service) finish(ctx context.Context, room *models.Room) {
	finishedAt := s.clock.Now()

	s.logger.Info("game finished",
		zap.String("room_id", room.ID),
		zap.String("winner", room.Result.Winner),
		zap.Int("rounds", len(room.RoundHistory)),
	)

	if room.Private {
		s.logger.Debug("skipping leaderboard for private room", zap.String("room_id", room.ID))
	} else {
		for _, player := range room.Players() {
			_, err := s.leaderboard.RecordResult(ctx, &leaderboard.RecordResultInput{
				NodeID:   player,
				Won:      player == room.Result.Winner,
				At:       finishedAt,
				DedupKey: room.CompletionKey(player),
			})
			if err != nil {
				s.logger.Error("failed to record game result",
					zap.Error(err),
					zap.String("room_id", room.ID),
					zap.String("player_node", player),
				)
			}
		}
	}

	if s.archive == nil {
		return
	}

	err := s.archive.ArchiveGame(ctx, &archiveRepo.ArchiveGameInput{Room: room, FinishedAt: finishedAt})
	if err != nil {
		s.logger.Warn("failed to archive game", zap.Error(err), zap.String("room_id", room.ID))
	}
}

// Reset clears all coordinator game state in one transaction
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, models.ErrNotConfigured
	}
	if err := requireCoordinator(input.Node); err != nil {
		return nil, err
	}

	out, err := s.adminRepo.ResetCoordinator(ctx, &adminRepo.ResetCoordinatorInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to reset coordinator: %w", err)
	}

	s.logger.Warn("coordinator state reset",
		zap.Int("rooms_deleted", out.RoomsDeleted),
		zap.Int("stats_deleted", out.StatsDeleted),
	)

	return &ResetOutput{RoomsDeleted: out.RoomsDeleted, StatsDeleted: out.StatsDeleted}, nil
}
