// Package node runs one roshambo node: a single goroutine that applies user
// commands and inbound envelopes one at a time, in arrival order.
package node

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/game"
	"github.com/KirkDiggler/roshambo/internal/services/messaging"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

// DefaultBuffer is the inbox capacity when Config.Buffer is zero
const DefaultBuffer = 64

// Config holds configuration for a node
type Config struct {
	NodeID string

	NodeRepo  nodeRepo.Repository
	Game      game.Service
	Directory directory.Service
	Router    messaging.Service
	Poster    transport.Poster

	// Buffer is the capacity of the inbox channel
	Buffer int

	Logger *zap.Logger
}

type request interface{ isRequest() }

type commandRequest struct {
	ctx   context.Context
	cmd   Command
	reply chan commandReply
}

type commandReply struct {
	result *Result
	err    error
}

type deliveryRequest struct {
	env *models.Envelope

	// reply is nil for fire-and-forget deliveries
	reply chan deliveryReply
}

type deliveryReply struct {
	output *messaging.HandleOutput
	err    error
}

func (commandRequest) isRequest()  {}
func (deliveryRequest) isRequest() {}

// Node is the single writer of one node's state
type Node struct {
	nodeID    string
	nodeRepo  nodeRepo.Repository
	game      game.Service
	directory directory.Service
	router    messaging.Service
	poster    transport.Poster
	logger    *zap.Logger

	inbox  chan request
	config atomic.Pointer[models.NodeConfig]

	startOnce sync.Once
	started   atomic.Bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a node; call Start before issuing commands
func New(cfg *Config) (*Node, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.NodeID == "" {
		return nil, ErrEmptyNodeID
	}
	if cfg.NodeRepo == nil {
		return nil, ErrNilNodeRepo
	}
	if cfg.Game == nil {
		return nil, ErrNilGame
	}
	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}
	if cfg.Router == nil {
		return nil, ErrNilRouter
	}
	if cfg.Poster == nil {
		return nil, ErrNilPoster
	}

	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	n := &Node{
		nodeID:    cfg.NodeID,
		nodeRepo:  cfg.NodeRepo,
		game:      cfg.Game,
		directory: cfg.Directory,
		router:    cfg.Router,
		poster:    cfg.Poster,
		logger:    logger.With(zap.String("node_id", cfg.NodeID)),
		inbox:     make(chan request, buffer),
		done:      make(chan struct{}),
	}
	n.config.Store(&models.NodeConfig{NodeID: cfg.NodeID})

	return n, nil
}

// Start loads the stored configuration and starts the loop. The loop runs
// until ctx is done or Stop is called.
func (n *Node) Start(ctx context.Context) error {
	stored, err := n.nodeRepo.GetConfig(ctx, &nodeRepo.GetConfigInput{})
	switch {
	case errors.Is(err, nodeRepo.ErrConfigNotFound):
		stored = &models.NodeConfig{NodeID: n.nodeID}
	case err != nil:
		return fmt.Errorf("failed to load node config: %w", err)
	case stored.NodeID != n.nodeID:
		return fmt.Errorf("stored config belongs to node %q, not %q", stored.NodeID, n.nodeID)
	}
	n.config.Store(stored)

	n.startOnce.Do(func() {
		loopCtx, cancel := context.WithCancel(ctx)
		n.cancel = cancel
		n.started.Store(true)
		go n.loop(loopCtx)
	})

	n.logger.Info("node started",
		zap.String("role", string(stored.Role())),
		zap.String("coordinator_id", stored.CoordinatorID),
	)
	return nil
}

// Stop ends the loop and waits for the request in progress to finish
func (n *Node) Stop() {
	if !n.started.Load() {
		return
	}
	n.cancel()
	<-n.done
}

// Done is closed once the loop has exited
func (n *Node) Done() <-chan struct{} {
	return n.done
}

// ID returns the node identity
func (n *Node) ID() string {
	return n.nodeID
}

// NodeConfig returns the current configuration
func (n *Node) NodeConfig() models.NodeConfig {
	return *n.config.Load()
}

func (n *Node) enqueue(ctx context.Context, req request) error {
	if !n.started.Load() {
		return ErrNotStarted
	}

	select {
	case n.inbox <- req:
		return nil
	case <-n.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Execute runs cmd on the loop and waits for its result
func (n *Node) Execute(ctx context.Context, cmd Command) (*Result, error) {
	reply := make(chan commandReply, 1)
	if err := n.enqueue(ctx, commandRequest{ctx: ctx, cmd: cmd, reply: reply}); err != nil {
		return nil, err
	}

	select {
	case r := <-reply:
		return r.result, r.err
	case <-n.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Deliver queues an inbound envelope without waiting for it to be applied
func (n *Node) Deliver(ctx context.Context, env *models.Envelope) error {
	return n.enqueue(ctx, deliveryRequest{env: env})
}

// Apply queues an inbound envelope and waits for the router's verdict
func (n *Node) Apply(ctx context.Context, env *models.Envelope) (*messaging.HandleOutput, error) {
	reply := make(chan deliveryReply, 1)
	if err := n.enqueue(ctx, deliveryRequest{env: env, reply: reply}); err != nil {
		return nil, err
	}

	select {
	case r := <-reply:
		return r.output, r.err
	case <-n.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Handle adapts Deliver to transport.Handler
func (n *Node) Handle(ctx context.Context, env *models.Envelope) {
	if err := n.Deliver(ctx, env); err != nil {
		n.logger.Error("failed to queue inbound envelope",
			zap.Error(err),
			zap.String("envelope_id", env.ID),
		)
	}
}

func (n *Node) loop(ctx context.Context) {
	defer close(n.done)

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("node stopped")
			return

		case req := <-n.inbox:
			switch r := req.(type) {
			case commandRequest:
				if err := r.ctx.Err(); err != nil {
					r.reply <- commandReply{err: err}
					break
				}
				result, err := n.execute(r.ctx, r.cmd)
				r.reply <- commandReply{result: result, err: err}

			case deliveryRequest:
				out, err := n.router.Handle(ctx, &messaging.HandleInput{
					Node:     n.NodeConfig(),
					Envelope: r.env,
				})
				if err != nil {
					n.logger.Error("failed to handle envelope",
						zap.Error(err),
						zap.String("envelope_id", r.env.ID),
						zap.String("kind", string(r.env.Kind)),
					)
				}
				if r.reply != nil {
					r.reply <- deliveryReply{output: out, err: err}
				}
			}
		}
	}
}
