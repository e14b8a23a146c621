// Package app assembles one node: its repositories, services, outbox, router
// and actor loop, bound to a transport.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/common/uuid"
	"github.com/KirkDiggler/roshambo/internal/node"
	adminRepo "github.com/KirkDiggler/roshambo/internal/repositories/admin"
	archiveRepo "github.com/KirkDiggler/roshambo/internal/repositories/archive"
	inboxRepo "github.com/KirkDiggler/roshambo/internal/repositories/inbox"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/roshambo/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/roshambo/internal/repositories/stats"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	"github.com/KirkDiggler/roshambo/internal/services/game"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
	"github.com/KirkDiggler/roshambo/internal/services/messaging"
	"github.com/KirkDiggler/roshambo/internal/services/query"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

// DefaultDedupTTL is how long seen envelope and completion ids are kept
const DefaultDedupTTL = 24 * time.Hour

// Config holds everything needed to assemble a node
type Config struct {
	NodeID string

	// Keys namespaces this node's redis state, it defaults to "roshambo:<node id>:"
	Keys keys.Space

	RedisClient *redis.Client
	Transport   transport.Transport

	// Clock and UUID default to the system implementations
	Clock clock.Clock
	UUID  uuid.UUID

	// Archive is optional
	Archive archiveRepo.Repository

	LeaderboardSize int
	DedupTTL        time.Duration

	// Buffer is the capacity of the node's inbox channel
	Buffer int

	Logger *zap.Logger
}

// App is one assembled node
type App struct {
	Node  *node.Node
	Query query.Service

	transport transport.Transport
	logger    *zap.Logger
}

// New wires a node without starting it
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.NodeID == "" {
		return nil, errors.New("node id cannot be empty")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if cfg.Transport == nil {
		return nil, errors.New("transport cannot be nil")
	}

	space := cfg.Keys
	if space == "" {
		space = keys.Space("roshambo:" + cfg.NodeID + ":")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}
	ttl := cfg.DedupTTL
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("node_id", cfg.NodeID))

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: cfg.RedisClient, Keys: space})
	if err != nil {
		return nil, fmt.Errorf("failed to create room repository: %w", err)
	}
	stats, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: cfg.RedisClient, Keys: space, ProcessedTTL: ttl})
	if err != nil {
		return nil, fmt.Errorf("failed to create stats repository: %w", err)
	}
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: cfg.RedisClient, Keys: space})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	nodes, err := nodeRepo.NewRedis(&nodeRepo.Config{RedisClient: cfg.RedisClient, Keys: space, SeenTTL: ttl})
	if err != nil {
		return nil, fmt.Errorf("failed to create node repository: %w", err)
	}
	inbox, err := inboxRepo.NewRedis(&inboxRepo.Config{RedisClient: cfg.RedisClient, Keys: space, TTL: ttl})
	if err != nil {
		return nil, fmt.Errorf("failed to create inbox repository: %w", err)
	}
	admin, err := adminRepo.NewRedis(&adminRepo.Config{RedisClient: cfg.RedisClient, Keys: space})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin repository: %w", err)
	}

	outbox, err := transport.NewOutbox(&transport.OutboxConfig{
		Sender: cfg.Transport,
		UUID:   ids,
		Clock:  clk,
		NodeID: cfg.NodeID,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox: %w", err)
	}

	board, err := leaderboard.New(&leaderboard.Config{
		StatsRepo:  stats,
		PlayerRepo: players,
		Clock:      clk,
		Size:       cfg.LeaderboardSize,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard service: %w", err)
	}

	games, err := game.New(&game.Config{
		RoomRepo:    rooms,
		PlayerRepo:  players,
		AdminRepo:   admin,
		Leaderboard: board,
		Clock:       clk,
		Archive:     cfg.Archive,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	names, err := directory.New(&directory.Config{
		NodeRepo:   nodes,
		PlayerRepo: players,
		Poster:     outbox,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %w", err)
	}

	router, err := messaging.New(&messaging.Config{
		Game:        games,
		Leaderboard: board,
		Directory:   names,
		NodeRepo:    nodes,
		Inbox:       inbox,
		Poster:      outbox,
		Clock:       clk,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	n, err := node.New(&node.Config{
		NodeID:    cfg.NodeID,
		NodeRepo:  nodes,
		Game:      games,
		Directory: names,
		Router:    router,
		Poster:    outbox,
		Buffer:    cfg.Buffer,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	queries, err := query.New(&query.Config{
		RoomRepo:    rooms,
		NodeRepo:    nodes,
		Leaderboard: board,
		Directory:   names,
		Node:        n,
		Archive:     cfg.Archive,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create query service: %w", err)
	}

	return &App{
		Node:      n,
		Query:     queries,
		transport: cfg.Transport,
		logger:    logger,
	}, nil
}

// Run starts the node and feeds it from the transport until ctx is done
func (a *App) Run(ctx context.Context) error {
	if err := a.Node.Start(ctx); err != nil {
		return err
	}
	defer a.Node.Stop()

	a.logger.Info("receiving envelopes")
	if err := a.transport.Receive(ctx, a.Node.Handle); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("transport stopped: %w", err)
	}
	return nil
}

// Close releases the transport
func (a *App) Close() error {
	return a.transport.Close()
}
