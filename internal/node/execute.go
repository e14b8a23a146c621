package node

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/game"
)

func (n *Node) execute(ctx context.Context, cmd Command) (*Result, error) {
	node := n.NodeConfig()

	switch c := cmd.(type) {
	case SetupLeaderboard:
		return n.setupLeaderboard(ctx, node, c)
	case SetPlayerName:
		return n.setPlayerName(ctx, node, c)
	case CreateRoom:
		return n.createRoom(ctx, node, c)
	case JoinRoom:
		return n.joinRoom(ctx, node, c)
	case SubmitChoice:
		return n.submitChoice(ctx, node, c)
	case ResetLeaderboard:
		return n.resetLeaderboard(ctx, node)
	}

	return nil, ErrUnknownCommand
}

func (n *Node) setupLeaderboard(ctx context.Context, node models.NodeConfig, c SetupLeaderboard) (*Result, error) {
	if node.Configured() {
		return nil, models.ErrAlreadyConfigured
	}
	if c.CoordinatorID == "" {
		return nil, ErrEmptyCoordinator
	}

	cfg := &models.NodeConfig{NodeID: n.nodeID, CoordinatorID: c.CoordinatorID}
	if err := n.nodeRepo.SetupConfig(ctx, &nodeRepo.SetupConfigInput{Config: cfg}); err != nil {
		return nil, err
	}
	n.config.Store(cfg)

	n.logger.Info("leaderboard configured",
		zap.String("coordinator_id", cfg.CoordinatorID),
		zap.String("role", string(cfg.Role())),
	)

	return &Result{Config: cfg}, nil
}

func (n *Node) setPlayerName(ctx context.Context, node models.NodeConfig, c SetPlayerName) (*Result, error) {
	out, err := n.directory.SetName(ctx, &directory.SetNameInput{Node: node, Name: c.Name})
	if err != nil {
		return nil, err
	}

	return &Result{Sent: out.Directory && !node.IsCoordinator()}, nil
}

func (n *Node) createRoom(ctx context.Context, node models.NodeConfig, c CreateRoom) (*Result, error) {
	out, err := n.game.CreateRoom(ctx, &game.CreateRoomInput{Node: node, RoomID: c.RoomID, Private: c.Private})
	if err != nil {
		return nil, err
	}

	return &Result{Room: out.Room}, nil
}

// joinRoom always goes through the coordinator's inbox, even when this node
// is the coordinator, so joins are ordered with every other message
func (n *Node) joinRoom(ctx context.Context, node models.NodeConfig, c JoinRoom) (*Result, error) {
	if !node.Configured() {
		return nil, models.ErrNotConfigured
	}
	if c.RoomID == "" {
		return nil, ErrEmptyRoomID
	}

	mirror, err := n.nodeRepo.GetMirror(ctx, &nodeRepo.GetMirrorInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load mirror: %w", err)
	}

	return n.send(ctx, node.CoordinatorID, &models.JoinRoom{
		RoomID:     c.RoomID,
		PlayerNode: n.nodeID,
		PlayerName: mirror.MyPlayerName,
	}), nil
}

func (n *Node) submitChoice(ctx context.Context, node models.NodeConfig, c SubmitChoice) (*Result, error) {
	if !node.Configured() {
		return nil, models.ErrNotConfigured
	}
	if c.RoomID == "" {
		return nil, ErrEmptyRoomID
	}
	if !c.Choice.IsValid() {
		return nil, ErrInvalidChoice
	}

	return n.send(ctx, node.CoordinatorID, &models.SubmitChoice{
		RoomID:     c.RoomID,
		PlayerNode: n.nodeID,
		Choice:     c.Choice,
	}), nil
}

func (n *Node) resetLeaderboard(ctx context.Context, node models.NodeConfig) (*Result, error) {
	out, err := n.game.Reset(ctx, &game.ResetInput{Node: node})
	if err != nil {
		return nil, err
	}

	return &Result{RoomsDeleted: out.RoomsDeleted, StatsDeleted: out.StatsDeleted}, nil
}

// send is fire-and-forget: a transport failure is logged and reported through
// Result.Sent, never as a command error
func (n *Node) send(ctx context.Context, to string, msg models.Message) *Result {
	if err := n.poster.Post(ctx, to, msg); err != nil {
		n.logger.Error("failed to send message",
			zap.Error(err),
			zap.String("to", to),
			zap.String("kind", string(msg.Kind())),
		)
		return &Result{}
	}
	return &Result{Sent: true}
}
