// Package redis carries envelopes through per-node redis lists. A node
// registers itself in a shared set; sending to an unregistered node bounces.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

const (
	// DefaultPrefix is shared by every node on one network
	DefaultPrefix = "roshambo:bus:"

	DefaultPollTimeout = time.Second

	inboxKeyPrefix = "inbox:"
	nodesKey       = "nodes"
)

// Config holds configuration for the redis transport
type Config struct {
	RedisClient *redis.Client
	NodeID      string

	// Prefix namespaces the inboxes and registry, DefaultPrefix when empty
	Prefix string

	// PollTimeout bounds each blocking read, DefaultPollTimeout when zero
	PollTimeout time.Duration

	Logger *zap.Logger
}

// Transport is a node's redis endpoint
type Transport struct {
	client      *redis.Client
	nodeID      string
	prefix      string
	pollTimeout time.Duration
	logger      *zap.Logger
	closed      atomic.Bool
}

var _ transport.Transport = (*Transport)(nil)

// New registers the node and returns its endpoint
func New(ctx context.Context, cfg *Config) (*Transport, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if cfg.NodeID == "" {
		return nil, transport.ErrEmptyNodeID
	}

	t := &Transport{
		client:      cfg.RedisClient,
		nodeID:      cfg.NodeID,
		prefix:      cfg.Prefix,
		pollTimeout: cfg.PollTimeout,
		logger:      cfg.Logger,
	}
	if t.prefix == "" {
		t.prefix = DefaultPrefix
	}
	if t.pollTimeout <= 0 {
		t.pollTimeout = DefaultPollTimeout
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	if err := t.client.SAdd(ctx, t.nodesKey(), t.nodeID).Err(); err != nil {
		return nil, fmt.Errorf("failed to register node: %w", err)
	}

	return t, nil
}

func (t *Transport) nodesKey() string {
	return t.prefix + nodesKey
}

func (t *Transport) inboxKey(nodeID string) string {
	return t.prefix + inboxKeyPrefix + nodeID
}

// Send appends env to the destination inbox, or a bounced copy to this
// node's inbox when the destination never registered
func (t *Transport) Send(ctx context.Context, env *models.Envelope) error {
	if t.closed.Load() {
		return transport.ErrClosed
	}
	if err := transport.Validate(env); err != nil {
		return err
	}

	registered, err := t.client.SIsMember(ctx, t.nodesKey(), env.To).Result()
	if err != nil {
		return fmt.Errorf("failed to look up node %s: %w", env.To, err)
	}

	target := t.inboxKey(env.To)
	if !registered {
		t.logger.Warn("destination not registered, bouncing",
			zap.String("envelope_id", env.ID),
			zap.String("to", env.To),
			zap.String("kind", string(env.Kind)),
		)
		env = env.Bounce()
		target = t.inboxKey(t.nodeID)
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	if err := t.client.RPush(ctx, target, data).Err(); err != nil {
		return fmt.Errorf("failed to push envelope: %w", err)
	}

	return nil
}

// Poll blocks up to the poll timeout for the next inbound envelope. It
// returns nil without error when the inbox stayed empty.
func (t *Transport) Poll(ctx context.Context) (*models.Envelope, error) {
	result, err := t.client.BLPop(ctx, t.pollTimeout, t.inboxKey(t.nodeID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pop envelope: %w", err)
	}

	// result is [key, value]
	var env models.Envelope
	if err := json.Unmarshal([]byte(result[1]), &env); err != nil {
		t.logger.Warn("dropping undecodable envelope", zap.Error(err))
		return nil, nil
	}

	return &env, nil
}

// Receive polls until ctx is done or the transport is closed
func (t *Transport) Receive(ctx context.Context, handler transport.Handler) error {
	for !t.closed.Load() {
		env, err := t.Poll(ctx)
		if env != nil {
			// A popped envelope is no longer in the inbox, so shutdown must not drop it
			handler(context.WithoutCancel(ctx), env)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			t.logger.Error("redis inbox poll failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(t.pollTimeout):
			}
			continue
		}
	}
	return nil
}

// Close stops sending and receiving. The registration is kept so envelopes
// sent while the node is down wait in its inbox.
func (t *Transport) Close() error {
	t.closed.Store(true)
	return nil
}
