package transport

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/common/uuid"
	"github.com/KirkDiggler/roshambo/internal/models"
)

// OutboxConfig holds configuration for an Outbox
type OutboxConfig struct {
	Sender Sender
	UUID   uuid.UUID
	Clock  clock.Clock

	// NodeID is stamped as From on every envelope
	NodeID string

	Logger *zap.Logger
}

var _ Poster = (*Outbox)(nil)

// Outbox wraps messages in envelopes for one node and sends them
type Outbox struct {
	sender Sender
	uuid   uuid.UUID
	clock  clock.Clock
	nodeID string
	logger *zap.Logger
}

// NewOutbox creates an outbox for cfg.NodeID
func NewOutbox(cfg *OutboxConfig) (*Outbox, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}
	if cfg.UUID == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.NodeID == "" {
		return nil, ErrEmptyNodeID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Outbox{
		sender: cfg.Sender,
		uuid:   cfg.UUID,
		clock:  cfg.Clock,
		nodeID: cfg.NodeID,
		logger: logger,
	}, nil
}

// NodeID returns the sending node
func (o *Outbox) NodeID() string {
	return o.nodeID
}

// Post sends msg to node to under a fresh envelope id
func (o *Outbox) Post(ctx context.Context, to string, msg models.Message) error {
	env, err := models.NewEnvelope(o.uuid.NewUUID(), o.nodeID, to, msg, o.clock.Now())
	if err != nil {
		return err
	}

	if err := o.sender.Send(ctx, env); err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", msg.Kind(), to, err)
	}

	o.logger.Debug("message sent",
		zap.String("envelope_id", env.ID),
		zap.String("kind", string(env.Kind)),
		zap.String("to", to),
	)
	return nil
}
