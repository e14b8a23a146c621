package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

const (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = models.NotFoundError("room not found")

	// ErrRoomAlreadyExists is returned when creating a room with a taken id
	ErrRoomAlreadyExists = models.ConflictError("room already exists")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Keys is the key space of the owning node
	Keys keys.Space
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	keys   keys.Space
}

// NewRedis creates a new Redis-backed room repository
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

// CreateRoom stores a new room with SETNX so a taken id is never overwritten
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil || input.Room.ID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	created, err := r.client.SetNX(ctx, r.keys.Room(input.Room.ID), roomJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	if !created {
		return ErrRoomAlreadyExists
	}

	pipe := r.client.TxPipeline()
	r.index(ctx, pipe, input.Room)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index room: %w", err)
	}

	return nil
}

// SaveRoom persists a room to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil || input.Room.ID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.keys.Room(input.Room.ID), roomJSON, 0)
	r.index(ctx, pipe, input.Room)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// index adds the room to the rooms set and adds or removes it from the
// available set depending on whether it can still be discovered
func (r *redisRepository) index(ctx context.Context, pipe redis.Pipeliner, room *models.Room) {
	pipe.SAdd(ctx, r.keys.RoomsIndex(), room.ID)

	if room.IsDiscoverable() {
		pipe.ZAdd(ctx, r.keys.AvailableRooms(), redis.Z{
			Score:  float64(room.CreatedAt.UnixNano()),
			Member: room.ID,
		})
	} else {
		pipe.ZRem(ctx, r.keys.AvailableRooms(), room.ID)
	}
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, r.keys.Room(input.RoomID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// ListRooms retrieves every indexed room ordered by creation time
func (r *redisRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	roomIDs, err := r.client.SMembers(ctx, r.keys.RoomsIndex()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room index: %w", err)
	}

	rooms, err := r.getRooms(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].CreatedAt.Equal(rooms[j].CreatedAt) {
			return rooms[i].ID < rooms[j].ID
		}
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})

	return &ListRoomsOutput{Rooms: rooms}, nil
}

// ListAvailable retrieves rooms from the available index, oldest first
func (r *redisRepository) ListAvailable(ctx context.Context, input *ListAvailableInput) (*ListAvailableOutput, error) {
	roomIDs, err := r.client.ZRange(ctx, r.keys.AvailableRooms(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	rooms, err := r.getRooms(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	return &ListAvailableOutput{Rooms: rooms}, nil
}

// getRooms loads rooms in the given order, skipping ids whose key is gone
func (r *redisRepository) getRooms(ctx context.Context, roomIDs []string) ([]*models.Room, error) {
	rooms := make([]*models.Room, 0, len(roomIDs))
	if len(roomIDs) == 0 {
		return rooms, nil
	}

	roomKeys := make([]string, len(roomIDs))
	for i, id := range roomIDs {
		roomKeys[i] = r.keys.Room(id)
	}

	values, err := r.client.MGet(ctx, roomKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	for i, value := range values {
		roomJSON, ok := value.(string)
		if !ok {
			continue
		}

		var room models.Room
		if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room %s: %w", roomIDs[i], err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
