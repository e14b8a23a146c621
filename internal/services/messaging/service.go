package messaging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/models"
	inboxRepo "github.com/KirkDiggler/roshambo/internal/repositories/inbox"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/game"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

type service struct {
	game        game.Service
	leaderboard leaderboard.Service
	directory   directory.Service
	nodeRepo    nodeRepo.Repository
	inbox       inboxRepo.Repository
	poster      transport.Poster
	clock       clock.Clock
	logger      *zap.Logger
}

// New creates a new message router
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Game == nil {
		return nil, ErrNilGame
	}
	if cfg.Leaderboard == nil {
		return nil, ErrNilLeaderboard
	}
	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}
	if cfg.NodeRepo == nil {
		return nil, ErrNilNodeRepo
	}
	if cfg.Inbox == nil {
		return nil, ErrNilInbox
	}
	if cfg.Poster == nil {
		return nil, ErrNilPoster
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		game:        cfg.Game,
		leaderboard: cfg.Leaderboard,
		directory:   cfg.Directory,
		nodeRepo:    cfg.NodeRepo,
		inbox:       cfg.Inbox,
		poster:      cfg.Poster,
		clock:       cfg.Clock,
		logger:      logger,
	}, nil
}

// Handle applies one envelope. Bounces exit first, then repeated envelope
// ids, then undecodable payloads, then coordinator-only kinds arriving at a
// node that is not the coordinator. Rejections by the game rules are
// reported as OutcomeRejected; only infrastructure failures return an error.
func (s *service) Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error) {
	if input == nil || input.Envelope == nil {
		return nil, ErrNilEnvelope
	}

	env := input.Envelope
	logger := s.logger.With(
		zap.String("envelope_id", env.ID),
		zap.String("kind", string(env.Kind)),
		zap.String("from", env.From),
	)

	if env.Bounced {
		logger.Warn("message bounced", zap.String("to", env.To))
		return &HandleOutput{Outcome: OutcomeBounced}, nil
	}

	if env.ID != "" {
		seen, err := s.inbox.MarkSeen(ctx, &inboxRepo.MarkSeenInput{EnvelopeID: env.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to mark envelope seen: %w", err)
		}
		if !seen.First {
			logger.Debug("dropping redelivered envelope")
			return &HandleOutput{Outcome: OutcomeDuplicate}, nil
		}
	}

	msg, err := env.Decode()
	if err != nil {
		logger.Warn("dropping undecodable envelope", zap.Error(err))
		return &HandleOutput{Outcome: OutcomeDropped}, nil
	}

	if msg.Kind().CoordinatorOnly() && !input.Node.IsCoordinator() {
		logger.Debug("ignoring coordinator message on non-coordinator node",
			zap.String("role", string(input.Node.Role())),
		)
		return &HandleOutput{Outcome: OutcomeIgnored}, nil
	}

	if msg.Kind().CoordinatorIssued() && env.From != input.Node.CoordinatorID {
		logger.Warn("ignoring coordinator message from another sender",
			zap.String("coordinator", input.Node.CoordinatorID),
		)
		return &HandleOutput{Outcome: OutcomeIgnored}, nil
	}

	h := &handling{service: s, node: input.Node, logger: logger}
	outcome, err := h.dispatch(ctx, msg)
	if err != nil {
		return nil, err
	}

	return &HandleOutput{Outcome: outcome, Sent: h.sent}, nil
}

// handling carries the state of one Handle call
type handling struct {
	*service
	node   models.NodeConfig
	logger *zap.Logger
	sent   int
}

func (h *handling) dispatch(ctx context.Context, msg models.Message) (Outcome, error) {
	switch m := msg.(type) {
	case *models.JoinRoom:
		return h.joinRoom(ctx, m)
	case *models.PlayerJoined:
		return h.playerJoined(ctx, m)
	case *models.SubmitChoice:
		return h.submitChoice(ctx, m)
	case *models.RoundCompleted:
		return h.roundCompleted(m)
	case *models.GameFinished:
		return h.gameFinished(ctx, m)
	case *models.UpdateLeaderboard:
		return h.updateLeaderboard(ctx, m)
	case *models.UpdatePlayerName:
		return h.updatePlayerName(ctx, m)
	}

	h.logger.Warn("no handler for message")
	return OutcomeDropped, nil
}

// post sends a message and logs a failure; outbound messages are fire-and-forget
func (h *handling) post(ctx context.Context, to string, msg models.Message) {
	if err := h.poster.Post(ctx, to, msg); err != nil {
		h.logger.Error("failed to send message",
			zap.Error(err),
			zap.String("to", to),
			zap.String("reply_kind", string(msg.Kind())),
		)
		return
	}
	h.sent++
}

// rejected reports whether err is a game rule rejection rather than a failure
func rejected(err error) bool {
	return models.IsNotFound(err) || models.IsConflict(err) || models.IsInvalidInput(err) || models.IsFatal(err)
}

func (h *handling) joinRoom(ctx context.Context, m *models.JoinRoom) (Outcome, error) {
	_, err := h.game.JoinRoom(ctx, &game.JoinRoomInput{
		Node:       h.node,
		RoomID:     m.RoomID,
		PlayerNode: m.PlayerNode,
		PlayerName: m.PlayerName,
	})

	outcome := OutcomeApplied
	if err != nil {
		if !rejected(err) {
			h.logger.Error("join failed", zap.Error(err), zap.String("room_id", m.RoomID))
		} else {
			h.logger.Info("join rejected", zap.Error(err), zap.String("room_id", m.RoomID))
		}
		outcome = OutcomeRejected
	}

	if m.PlayerNode != "" {
		h.post(ctx, m.PlayerNode, &models.PlayerJoined{
			RoomID:     m.RoomID,
			PlayerNode: m.PlayerNode,
			Success:    err == nil,
		})
	}

	return outcome, nil
}

func (h *handling) submitChoice(ctx context.Context, m *models.SubmitChoice) (Outcome, error) {
	out, err := h.game.SubmitChoice(ctx, &game.SubmitChoiceInput{
		Node:       h.node,
		RoomID:     m.RoomID,
		PlayerNode: m.PlayerNode,
		Choice:     m.Choice,
	})
	if err != nil {
		if !rejected(err) {
			return "", err
		}
		h.logger.Info("choice rejected", zap.Error(err), zap.String("room_id", m.RoomID))
		return OutcomeRejected, nil
	}

	if out.Round == nil {
		return OutcomeApplied, nil
	}

	room := out.Room
	round := &models.RoundCompleted{
		RoomID:        room.ID,
		RoundNumber:   out.Round.RoundNumber,
		Player1Choice: out.Round.Player1Choice,
		Player2Choice: out.Round.Player2Choice,
		RoundWinner:   out.Round.Winner,
		Outcome:       out.Round.Outcome,
		Result:        room.Result,
	}
	for _, player := range room.Players() {
		h.post(ctx, player, round)
	}

	if out.Finished {
		for _, player := range room.Players() {
			h.post(ctx, player, &models.GameFinished{
				RoomID:      room.ID,
				Winner:      room.Result.Winner,
				FinalResult: room.Result,
				DedupKey:    room.CompletionKey(player),
			})
		}
	}

	return OutcomeApplied, nil
}

func (h *handling) updateLeaderboard(ctx context.Context, m *models.UpdateLeaderboard) (Outcome, error) {
	if m.PlayerNode == "" {
		h.logger.Warn("leaderboard update without player")
		return OutcomeRejected, nil
	}

	out, err := h.leaderboard.RecordResult(ctx, &leaderboard.RecordResultInput{
		NodeID:   m.PlayerNode,
		Won:      m.Won,
		DedupKey: m.DedupKey,
	})
	if err != nil {
		return "", err
	}
	if out.Duplicate {
		return OutcomeDuplicate, nil
	}

	return OutcomeApplied, nil
}

func (h *handling) updatePlayerName(ctx context.Context, m *models.UpdatePlayerName) (Outcome, error) {
	err := h.directory.RecordName(ctx, &directory.RecordNameInput{
		Node:       h.node,
		PlayerNode: m.PlayerNode,
		Name:       m.PlayerName,
	})
	if err != nil {
		if !rejected(err) {
			return "", err
		}
		h.logger.Info("name update rejected", zap.Error(err))
		return OutcomeRejected, nil
	}

	return OutcomeApplied, nil
}

// playerJoined folds a successful join into the mirror of the joining node
func (h *handling) playerJoined(ctx context.Context, m *models.PlayerJoined) (Outcome, error) {
	if m.PlayerNode != h.node.NodeID {
		return OutcomeIgnored, nil
	}
	if !m.Success {
		h.logger.Info("join was refused", zap.String("room_id", m.RoomID))
		return OutcomeRejected, nil
	}

	mirror, err := h.nodeRepo.GetMirror(ctx, &nodeRepo.GetMirrorInput{})
	if err != nil {
		return "", fmt.Errorf("failed to load mirror: %w", err)
	}

	mirror.JoinedRoom(m.RoomID)

	if err := h.nodeRepo.SaveMirror(ctx, &nodeRepo.SaveMirrorInput{Mirror: mirror}); err != nil {
		return "", fmt.Errorf("failed to save mirror: %w", err)
	}

	h.logger.Info("joined room", zap.String("room_id", m.RoomID))
	return OutcomeApplied, nil
}

func (h *handling) roundCompleted(m *models.RoundCompleted) (Outcome, error) {
	h.logger.Info("round completed",
		zap.String("room_id", m.RoomID),
		zap.Int("round_number", m.RoundNumber),
		zap.String("outcome", string(m.Outcome)),
		zap.String("round_winner", m.RoundWinner),
		zap.Int("player1_wins", m.Result.Player1Wins),
		zap.Int("player2_wins", m.Result.Player2Wins),
		zap.Int("draws", m.Result.Draws),
	)
	return OutcomeApplied, nil
}

// gameFinished folds the completion into the local stats at most once per
// dedup key
func (h *handling) gameFinished(ctx context.Context, m *models.GameFinished) (Outcome, error) {
	mirror, err := h.nodeRepo.GetMirror(ctx, &nodeRepo.GetMirrorInput{})
	if err != nil {
		return "", fmt.Errorf("failed to load mirror: %w", err)
	}

	won := m.Winner == h.node.NodeID
	mirror.FinishedRoom(h.node.NodeID, m.RoomID, won, h.clock.Now())

	err = h.nodeRepo.SaveMirror(ctx, &nodeRepo.SaveMirrorInput{Mirror: mirror, DedupKey: m.DedupKey})
	if errors.Is(err, nodeRepo.ErrAlreadyApplied) {
		h.logger.Debug("game completion already folded", zap.String("dedup_key", m.DedupKey))
		return OutcomeDuplicate, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to save mirror: %w", err)
	}

	h.logger.Info("game finished",
		zap.String("room_id", m.RoomID),
		zap.String("winner", m.Winner),
		zap.Bool("won", won),
	)
	return OutcomeApplied, nil
}
