package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/roshambo/internal/models"
)

const defaultListLimit = 50

// Querier is the subset of *pgxpool.Pool the archive uses
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Config holds configuration for the Postgres archive
type Config struct {
	DB Querier
}

type postgresRepository struct {
	db Querier
}

// Connect opens a pool and verifies the connection
func Connect(ctx context.Context, connString string, maxConns int32) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}
	if maxConns > 0 {
		poolConfig.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return pool, nil
}

// NewPostgres creates a Postgres-backed archive
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &postgresRepository{db: cfg.DB}, nil
}

// RunMigrations creates the archive table
func (r *postgresRepository) RunMigrations(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS finished_games (
			room_id VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL,
			player1 VARCHAR(255) NOT NULL,
			player2 VARCHAR(255) NOT NULL,
			winner VARCHAR(255) NOT NULL,
			private BOOLEAN NOT NULL DEFAULT FALSE,
			room JSONB NOT NULL,
			PRIMARY KEY (room_id, created_at)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_finished_games_player1 ON finished_games(player1, finished_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_finished_games_player2 ON finished_games(player2, finished_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	return nil
}

// ArchiveGame upserts on (room_id, created_at) so replays of the deciding
// round write the same row
func (r *postgresRepository) ArchiveGame(ctx context.Context, input *ArchiveGameInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	room := input.Room
	if !room.Result.IsFinished {
		return fmt.Errorf("room %s is not finished", room.ID)
	}

	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("marshaling room: %w", err)
	}

	query := `
		INSERT INTO finished_games (room_id, created_at, finished_at, player1, player2, winner, private, room)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (room_id, created_at)
		DO UPDATE SET finished_at = EXCLUDED.finished_at, winner = EXCLUDED.winner, room = EXCLUDED.room
	`
	_, err = r.db.Exec(ctx, query,
		room.ID,
		room.CreatedAt,
		input.FinishedAt,
		room.Player1,
		room.Player2,
		room.Result.Winner,
		room.Private,
		roomJSON,
	)
	if err != nil {
		return fmt.Errorf("archiving game: %w", err)
	}

	return nil
}

// ListGames retrieves archived games where the node held either slot
func (r *postgresRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil || input.NodeID == "" {
		return nil, errors.New("input and node ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT room
		FROM finished_games
		WHERE player1 = $1 OR player2 = $1
		ORDER BY finished_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, input.NodeID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	defer rows.Close()

	out := &ListGamesOutput{Games: []*models.Room{}}
	for rows.Next() {
		var roomJSON []byte
		if err := rows.Scan(&roomJSON); err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}

		var room models.Room
		if err := json.Unmarshal(roomJSON, &room); err != nil {
			return nil, fmt.Errorf("unmarshaling game: %w", err)
		}
		out.Games = append(out.Games, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating games: %w", err)
	}

	return out, nil
}
