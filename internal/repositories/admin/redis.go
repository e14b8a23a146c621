package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

// maxResetAttempts bounds retries when a watched index changes mid-reset
const maxResetAttempts = 3

// Config holds configuration for the Redis admin repository
type Config struct {
	RedisClient *redis.Client
	Keys        keys.Space
}

type redisRepository struct {
	client *redis.Client
	keys   keys.Space
}

// NewRedis creates a new Redis-backed admin repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
		keys:   cfg.Keys,
	}, nil
}

// ResetCoordinator watches both indexes, reads them and deletes everything
// they name in one MULTI/EXEC
func (r *redisRepository) ResetCoordinator(ctx context.Context, input *ResetCoordinatorInput) (*ResetCoordinatorOutput, error) {
	roomsIndex, statsIndex := r.keys.RoomsIndex(), r.keys.StatsIndex()
	out := &ResetCoordinatorOutput{}

	reset := func(tx *redis.Tx) error {
		roomIDs, err := tx.SMembers(ctx, roomsIndex).Result()
		if err != nil {
			return fmt.Errorf("failed to read room index: %w", err)
		}

		nodeIDs, err := tx.SMembers(ctx, statsIndex).Result()
		if err != nil {
			return fmt.Errorf("failed to read stats index: %w", err)
		}

		del := []string{roomsIndex, statsIndex, r.keys.AvailableRooms(), r.keys.Leaderboard()}
		for _, id := range roomIDs {
			del = append(del, r.keys.Room(id))
		}
		for _, id := range nodeIDs {
			del = append(del, r.keys.Stats(id))
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, del...)
			return nil
		})
		if err != nil {
			return err
		}

		out.RoomsDeleted = len(roomIDs)
		out.StatsDeleted = len(nodeIDs)
		return nil
	}

	for attempt := 0; attempt < maxResetAttempts; attempt++ {
		err := r.client.Watch(ctx, reset, roomsIndex, statsIndex)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, fmt.Errorf("failed to reset coordinator: %w", err)
		}
	}

	return nil, fmt.Errorf("failed to reset coordinator: %w", redis.TxFailedErr)
}
