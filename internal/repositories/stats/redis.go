package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

const (
	// ErrStatsNotFound is returned when a node has no recorded games
	ErrStatsNotFound = models.NotFoundError("player stats not found")

	// ErrAlreadyRecorded is returned when a dedup key was already applied
	ErrAlreadyRecorded = models.ConflictError("result already recorded")
)

// maxSaveAttempts bounds retries when a concurrent claim races the transaction
const maxSaveAttempts = 3

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keys is the key space of the owning node
	Keys keys.Space

	// ProcessedTTL bounds how long dedup keys are remembered, 0 keeps them forever
	ProcessedTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client       *redis.Client
	keys         keys.Space
	processedTTL time.Duration
}

// NewRedis creates a new Redis-backed stats repository
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
		client:       cfg.RedisClient,
		keys:         cfg.Keys,
		processedTTL: cfg.ProcessedTTL,
	}, nil
}

// GetStats retrieves stats by node ID
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.NodeID == "" {
		return nil, errors.New("input and node ID cannot be empty")
	}

	statsJSON, err := r.client.Get(ctx, r.keys.Stats(input.NodeID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	var stats models.PlayerStats
	if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player stats: %w", err)
	}

	return &stats, nil
}

// SaveStats persists stats and adds the node to the stats index
func (r *redisRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	if input == nil || input.Stats == nil || input.Stats.NodeID == "" {
		return errors.New("input and node ID cannot be empty")
	}

	statsJSON, err := json.Marshal(input.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}

	statsKey, indexKey := r.keys.Stats(input.Stats.NodeID), r.keys.StatsIndex()

	if input.DedupKey == "" {
		_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, statsKey, statsJSON, 0)
			pipe.SAdd(ctx, indexKey, input.Stats.NodeID)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to save player stats: %w", err)
		}
		return nil
	}

	// The claim and the write commit together, so a failed write leaves the
	// key free for a retry
	processedKey := r.keys.Processed(input.DedupKey)
	save := func(tx *redis.Tx) error {
		seen, err := tx.Exists(ctx, processedKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check dedup key: %w", err)
		}
		if seen > 0 {
			return ErrAlreadyRecorded
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, processedKey, input.Stats.NodeID, r.processedTTL)
			pipe.Set(ctx, statsKey, statsJSON, 0)
			pipe.SAdd(ctx, indexKey, input.Stats.NodeID)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err := r.client.Watch(ctx, save, processedKey)
		if err == nil || errors.Is(err, ErrAlreadyRecorded) {
			return err
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("failed to save player stats: %w", err)
		}
	}

	return fmt.Errorf("failed to save player stats: %w", redis.TxFailedErr)
}

// ListStats retrieves every indexed stats entry ordered by node ID
func (r *redisRepository) ListStats(ctx context.Context, input *ListStatsInput) (*ListStatsOutput, error) {
	nodeIDs, err := r.client.SMembers(ctx, r.keys.StatsIndex()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats index: %w", err)
	}
	sort.Strings(nodeIDs)

	out := &ListStatsOutput{Stats: make([]*models.PlayerStats, 0, len(nodeIDs))}
	if len(nodeIDs) == 0 {
		return out, nil
	}

	statsKeys := make([]string, len(nodeIDs))
	for i, id := range nodeIDs {
		statsKeys[i] = r.keys.Stats(id)
	}

	values, err := r.client.MGet(ctx, statsKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	for i, value := range values {
		statsJSON, ok := value.(string)
		if !ok {
			continue
		}

		var stats models.PlayerStats
		if err := json.Unmarshal([]byte(statsJSON), &stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats for %s: %w", nodeIDs[i], err)
		}
		out.Stats = append(out.Stats, &stats)
	}

	return out, nil
}

// GetLeaderboard returns the stored leaderboard, empty if none was built
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	out := &GetLeaderboardOutput{Entries: []models.LeaderboardEntry{}}

	boardJSON, err := r.client.Get(ctx, r.keys.Leaderboard()).Result()
	if err != nil {
		if err == redis.Nil {
			return out, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if err := json.Unmarshal([]byte(boardJSON), &out.Entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}

	return out, nil
}

// SaveLeaderboard overwrites the stored leaderboard
func (r *redisRepository) SaveLeaderboard(ctx context.Context, input *SaveLeaderboardInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	entries := input.Entries
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	boardJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := r.client.Set(ctx, r.keys.Leaderboard(), boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return nil
}
