package directory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

type service struct {
	nodeRepo   nodeRepo.Repository
	playerRepo playerRepo.Repository
	poster     transport.Poster
	logger     *zap.Logger
}

// New creates a new directory service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.NodeRepo == nil {
		return nil, ErrNilNodeRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.Poster == nil {
		return nil, ErrNilPoster
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		nodeRepo:   cfg.NodeRepo,
		playerRepo: cfg.PlayerRepo,
		poster:     cfg.Poster,
		logger:     logger,
	}, nil
}

// SetName keeps the name in the local mirror. The coordinator writes its own
// directory entry; a participant sends the name to the coordinator. An
// unconfigured node only keeps it locally.
func (s *service) SetName(ctx context.Context, input *SetNameInput) (*SetNameOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyName
	}

	mirror, err := s.nodeRepo.GetMirror(ctx, &nodeRepo.GetMirrorInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load mirror: %w", err)
	}

	mirror.MyPlayerName = input.Name
	if err := s.nodeRepo.SaveMirror(ctx, &nodeRepo.SaveMirrorInput{Mirror: mirror}); err != nil {
		return nil, fmt.Errorf("failed to save mirror: %w", err)
	}

	node := input.Node
	switch node.Role() {
	case models.RoleCoordinator:
		err := s.playerRepo.SetName(ctx, &playerRepo.SetNameInput{NodeID: node.NodeID, Name: input.Name})
		if err != nil {
			return nil, err
		}
		return &SetNameOutput{Directory: true}, nil

	case models.RoleParticipant:
		err := s.poster.Post(ctx, node.CoordinatorID, &models.UpdatePlayerName{
			PlayerNode: node.NodeID,
			PlayerName: input.Name,
		})
		if err != nil {
			s.logger.Warn("failed to send player name to coordinator",
				zap.Error(err),
				zap.String("coordinator_id", node.CoordinatorID),
			)
			return &SetNameOutput{}, nil
		}
		return &SetNameOutput{Directory: true}, nil
	}

	s.logger.Debug("name kept locally until a coordinator is configured", zap.String("name", input.Name))
	return &SetNameOutput{}, nil
}

// RecordName writes the entry, last writer wins
func (s *service) RecordName(ctx context.Context, input *RecordNameInput) error {
	if input == nil || input.PlayerNode == "" {
		return ErrEmptyNodeID
	}
	if !input.Node.Configured() {
		return models.ErrNotConfigured
	}
	if !input.Node.IsCoordinator() {
		return models.ErrNotCoordinator
	}
	if input.Name == "" {
		return ErrEmptyName
	}

	if err := s.playerRepo.SetName(ctx, &playerRepo.SetNameInput{NodeID: input.PlayerNode, Name: input.Name}); err != nil {
		return err
	}

	s.logger.Info("player name recorded",
		zap.String("player_node", input.PlayerNode),
		zap.String("name", input.Name),
	)
	return nil
}

func (s *service) GetName(ctx context.Context, input *GetNameInput) (*GetNameOutput, error) {
	if input == nil || input.NodeID == "" {
		return nil, ErrEmptyNodeID
	}

	name, err := s.playerRepo.GetName(ctx, &playerRepo.GetNameInput{NodeID: input.NodeID})
	if err != nil {
		return nil, err
	}

	return &GetNameOutput{Name: name}, nil
}

func (s *service) ListNames(ctx context.Context, _ *ListNamesInput) (*ListNamesOutput, error) {
	out, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	return &ListNamesOutput{Players: out.Players}, nil
}
