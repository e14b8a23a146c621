package inbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

// Config holds configuration for the Redis inbox repository
type Config struct {
	RedisClient *redis.Client
	Keys        keys.Space

	// TTL is how long a seen envelope id is remembered
	TTL time.Duration
}

type redisRepository struct {
	client *redis.Client
	keys   keys.Space
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed inbox repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("dedup ttl must be positive")
	}

	return &redisRepository{
		client: cfg.RedisClient,
		keys:   cfg.Keys,
		ttl:    cfg.TTL,
	}, nil
}

// MarkSeen claims the envelope id with SETNX
func (r *redisRepository) MarkSeen(ctx context.Context, input *MarkSeenInput) (*MarkSeenOutput, error) {
	if input == nil || input.EnvelopeID == "" {
		return nil, errors.New("input and envelope ID cannot be empty")
	}

	first, err := r.client.SetNX(ctx, r.keys.InboxSeen(input.EnvelopeID), 1, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mark envelope seen: %w", err)
	}

	return &MarkSeenOutput{First: first}, nil
}
