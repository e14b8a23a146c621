package player

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

// ErrPlayerNotFound is returned when a node has no display name
const ErrPlayerNotFound = models.NotFoundError("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keys is the key space of the owning node
	Keys keys.Space
}

// redisRepository implements the Repository interface using a Redis hash
type redisRepository struct {
	client *redis.Client
	keys   keys.Space
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		keys:   cfg.Keys,
	}, nil
}

// SetName stores a display name, last writer wins
func (r *redisRepository) SetName(ctx context.Context, input *SetNameInput) error {
	if input == nil || input.NodeID == "" {
		return errors.New("input and node ID cannot be empty")
	}

	if err := r.client.HSet(ctx, r.keys.PlayerNames(), input.NodeID, input.Name).Err(); err != nil {
		return fmt.Errorf("failed to set player name: %w", err)
	}

	return nil
}

// GetName retrieves a display name by node ID
func (r *redisRepository) GetName(ctx context.Context, input *GetNameInput) (string, error) {
	if input == nil || input.NodeID == "" {
		return "", errors.New("input and node ID cannot be empty")
	}

	name, err := r.client.HGet(ctx, r.keys.PlayerNames(), input.NodeID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrPlayerNotFound
		}
		return "", fmt.Errorf("failed to get player name: %w", err)
	}

	return name, nil
}

// GetNames retrieves display names for the given nodes in one round trip
func (r *redisRepository) GetNames(ctx context.Context, input *GetNamesInput) (*GetNamesOutput, error) {
	out := &GetNamesOutput{Names: make(map[string]string)}
	if input == nil || len(input.NodeIDs) == 0 {
		return out, nil
	}

	values, err := r.client.HMGet(ctx, r.keys.PlayerNames(), input.NodeIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}

	for i, value := range values {
		if name, ok := value.(string); ok {
			out.Names[input.NodeIDs[i]] = name
		}
	}

	return out, nil
}

// ListPlayers retrieves the whole directory
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	names, err := r.client.HGetAll(ctx, r.keys.PlayerNames()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player names: %w", err)
	}

	players := make([]*models.Player, 0, len(names))
	for nodeID, name := range names {
		players = append(players, &models.Player{NodeID: nodeID, Name: name})
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].NodeID < players[j].NodeID
	})

	return &ListPlayersOutput{Players: players}, nil
}
