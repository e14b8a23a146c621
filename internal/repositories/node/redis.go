package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

const (
	// ErrConfigNotFound is returned before SetupLeaderboard ran
	ErrConfigNotFound = models.NotFoundError("node configuration not found")

	// ErrAlreadyApplied is returned when a dedup key was already folded
	ErrAlreadyApplied = models.ConflictError("message already applied to mirror")
)

// maxSaveAttempts bounds retries when a concurrent claim races the transaction
const maxSaveAttempts = 3

// Config holds configuration for the Redis node repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keys is the key space of the owning node
	Keys keys.Space

	// SeenTTL bounds how long mirror dedup keys are remembered, 0 keeps them forever
	SeenTTL time.Duration
}

type redisRepository struct {
	client  *redis.Client
	keys    keys.Space
	seenTTL time.Duration
}

// NewRedis creates a new Redis-backed node repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client:  cfg.RedisClient,
		keys:    cfg.Keys,
		seenTTL: cfg.SeenTTL,
	}, nil
}

func (r *redisRepository) GetConfig(ctx context.Context, input *GetConfigInput) (*models.NodeConfig, error) {
	configJSON, err := r.client.Get(ctx, r.keys.NodeConfig()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get node config: %w", err)
	}

	var cfg models.NodeConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node config: %w", err)
	}

	return &cfg, nil
}

// SetupConfig writes the configuration with SETNX. A second setup fails with
// models.ErrAlreadyConfigured and leaves the first one in place.
func (r *redisRepository) SetupConfig(ctx context.Context, input *SetupConfigInput) error {
	if input == nil || input.Config == nil || !input.Config.Configured() {
		return errors.New("input and coordinator ID cannot be empty")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal node config: %w", err)
	}

	stored, err := r.client.SetNX(ctx, r.keys.NodeConfig(), configJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to store node config: %w", err)
	}
	if !stored {
		return models.ErrAlreadyConfigured
	}

	return nil
}

func (r *redisRepository) GetMirror(ctx context.Context, input *GetMirrorInput) (*models.Mirror, error) {
	mirrorJSON, err := r.client.Get(ctx, r.keys.Mirror()).Result()
	if err != nil {
		if err == redis.Nil {
			return models.NewMirror(), nil
		}
		return nil, fmt.Errorf("failed to get mirror: %w", err)
	}

	mirror := models.NewMirror()
	if err := json.Unmarshal([]byte(mirrorJSON), mirror); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mirror: %w", err)
	}

	return mirror, nil
}

func (r *redisRepository) SaveMirror(ctx context.Context, input *SaveMirrorInput) error {
	if input == nil || input.Mirror == nil {
		return errors.New("input and mirror cannot be nil")
	}

	mirrorJSON, err := json.Marshal(input.Mirror)
	if err != nil {
		return fmt.Errorf("failed to marshal mirror: %w", err)
	}

	if input.DedupKey == "" {
		if err := r.client.Set(ctx, r.keys.Mirror(), mirrorJSON, 0).Err(); err != nil {
			return fmt.Errorf("failed to save mirror: %w", err)
		}
		return nil
	}

	// The claim commits with the mirror so a failed write can be retried
	seenKey := r.keys.MirrorSeen(input.DedupKey)
	save := func(tx *redis.Tx) error {
		seen, err := tx.Exists(ctx, seenKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check dedup key: %w", err)
		}
		if seen > 0 {
			return ErrAlreadyApplied
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, seenKey, 1, r.seenTTL)
			pipe.Set(ctx, r.keys.Mirror(), mirrorJSON, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err := r.client.Watch(ctx, save, seenKey)
		if err == nil || errors.Is(err, ErrAlreadyApplied) {
			return err
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("failed to save mirror: %w", err)
		}
	}

	return fmt.Errorf("failed to save mirror: %w", redis.TxFailedErr)
}
