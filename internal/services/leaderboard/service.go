package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/common/clock"
	"github.com/KirkDiggler/roshambo/internal/models"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	statsRepo "github.com/KirkDiggler/roshambo/internal/repositories/stats"
)

type service struct {
	statsRepo  statsRepo.Repository
	playerRepo playerRepo.Repository
	clock      clock.Clock
	size       int
	logger     *zap.Logger
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Size < 0 {
		return nil, ErrInvalidSize
	}

	size := cfg.Size
	if size == 0 {
		size = models.LeaderboardSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		statsRepo:  cfg.StatsRepo,
		playerRepo: cfg.PlayerRepo,
		clock:      cfg.Clock,
		size:       size,
		logger:     logger,
	}, nil
}

// RecordResult loads or lazily creates the node's stats, adds the game,
// persists and rebuilds the leaderboard
func (s *service) RecordResult(ctx context.Context, input *RecordResultInput) (*RecordResultOutput, error) {
	if input == nil || input.NodeID == "" {
		return nil, models.InvalidInputError("node ID cannot be empty")
	}

	stats, err := s.statsRepo.GetStats(ctx, &statsRepo.GetStatsInput{NodeID: input.NodeID})
	if err != nil {
		if !errors.Is(err, statsRepo.ErrStatsNotFound) {
			return nil, err
		}
		stats = models.NewPlayerStats(input.NodeID)
	}

	at := input.At
	if at.IsZero() {
		at = s.clock.Now()
	}
	stats.AddGame(input.Won, at)

	err = s.statsRepo.SaveStats(ctx, &statsRepo.SaveStatsInput{
		Stats:    stats,
		DedupKey: input.DedupKey,
	})
	if err != nil {
		if errors.Is(err, statsRepo.ErrAlreadyRecorded) {
			s.logger.Info("duplicate game result ignored",
				zap.String("node_id", input.NodeID),
				zap.String("dedup_key", input.DedupKey),
			)
			return &RecordResultOutput{Duplicate: true}, nil
		}
		return nil, err
	}

	if _, err := s.RebuildLeaderboard(ctx, &RebuildLeaderboardInput{}); err != nil {
		return nil, err
	}

	s.logger.Info("game result recorded",
		zap.String("node_id", stats.NodeID),
		zap.Bool("won", input.Won),
		zap.Int64("games_played", stats.GamesPlayed),
		zap.Int64("games_won", stats.GamesWon),
		zap.Float64("win_rate", stats.WinRate()),
	)

	return &RecordResultOutput{Stats: stats}, nil
}

// RebuildLeaderboard is a full recompute. Ordering is total so two rebuilds
// over the same stats store identical leaderboards.
func (s *service) RebuildLeaderboard(ctx context.Context, input *RebuildLeaderboardInput) (*RebuildLeaderboardOutput, error) {
	all, err := s.statsRepo.ListStats(ctx, &statsRepo.ListStatsInput{})
	if err != nil {
		return nil, err
	}

	nodeIDs := make([]string, len(all.Stats))
	for i, st := range all.Stats {
		nodeIDs[i] = st.NodeID
	}

	names, err := s.playerRepo.GetNames(ctx, &playerRepo.GetNamesInput{NodeIDs: nodeIDs})
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(all.Stats))
	for _, st := range all.Stats {
		entries = append(entries, models.NewLeaderboardEntry(st, names.Names[st.NodeID]))
	}

	Rank(entries)
	if len(entries) > s.size {
		entries = entries[:s.size]
	}

	if err := s.statsRepo.SaveLeaderboard(ctx, &statsRepo.SaveLeaderboardInput{Entries: entries}); err != nil {
		return nil, fmt.Errorf("failed to store leaderboard: %w", err)
	}

	s.logger.Debug("leaderboard rebuilt",
		zap.Int("players", len(all.Stats)),
		zap.Int("entries", len(entries)),
	)

	return &RebuildLeaderboardOutput{Entries: entries}, nil
}

// Rank sorts entries best first: wins, then win rate, then total games, all
// descending, with node id ascending as the final tiebreak
func Rank(entries []models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if ra, rb := a.WinRate(), b.WinRate(); ra != rb {
			return ra > rb
		}
		if a.TotalGames != b.TotalGames {
			return a.TotalGames > b.TotalGames
		}
		return a.NodeID < b.NodeID
	})
}

func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	out, err := s.statsRepo.GetLeaderboard(ctx, &statsRepo.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}
	return &GetLeaderboardOutput{Entries: out.Entries}, nil
}

func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.NodeID == "" {
		return nil, models.InvalidInputError("node ID cannot be empty")
	}
	return s.statsRepo.GetStats(ctx, &statsRepo.GetStatsInput{NodeID: input.NodeID})
}

func (s *service) ListPlayerStats(ctx context.Context, input *ListPlayerStatsInput) (*ListPlayerStatsOutput, error) {
	out, err := s.statsRepo.ListStats(ctx, &statsRepo.ListStatsInput{})
	if err != nil {
		return nil, err
	}
	return &ListPlayerStatsOutput{Stats: out.Stats}, nil
}
