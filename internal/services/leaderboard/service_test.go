package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/roshambo/internal/common/clock/mocks"
	"github.com/KirkDiggler/roshambo/internal/models"
	playerRepo "github.com/KirkDiggler/roshambo/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/roshambo/internal/repositories/player/mocks"
	statsRepo "github.com/KirkDiggler/roshambo/internal/repositories/stats"
	statsMocks "github.com/KirkDiggler/roshambo/internal/repositories/stats/mocks"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockStatsRepo  *statsMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockClock      *clockMocks.MockClock
	service        *service
	ctx            context.Context
	testTime       time.Time
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStatsRepo = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		StatsRepo:  s.mockStatsRepo,
		PlayerRepo: s.mockPlayerRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func statsWith(nodeID string, wins, games int64) *models.PlayerStats {
	return &models.PlayerStats{
		NodeID:      nodeID,
		GamesPlayed: games,
		GamesWon:    wins,
		GamesLost:   games - wins,
	}
}

func nodeIDs(entries []models.LeaderboardEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.NodeID
	}
	return ids
}

// expectRebuild serves all from ListStats and captures the saved leaderboard
func (s *LeaderboardServiceTestSuite) expectRebuild(all []*models.PlayerStats, names map[string]string, saved *[]models.LeaderboardEntry) {
	s.mockStatsRepo.EXPECT().
		ListStats(s.ctx, &statsRepo.ListStatsInput{}).
		Return(&statsRepo.ListStatsOutput{Stats: all}, nil)

	s.mockPlayerRepo.EXPECT().
		GetNames(s.ctx, gomock.Any()).
		Return(&playerRepo.GetNamesOutput{Names: names}, nil)

	s.mockStatsRepo.EXPECT().
		SaveLeaderboard(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *statsRepo.SaveLeaderboardInput) error {
			*saved = input.Entries
			return nil
		})
}

func (s *LeaderboardServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{PlayerRepo: s.mockPlayerRepo, Clock: s.mockClock})
	s.Equal(ErrNilStatsRepo, err)

	_, err = New(&Config{StatsRepo: s.mockStatsRepo, PlayerRepo: s.mockPlayerRepo, Clock: s.mockClock, Size: -1})
	s.Equal(ErrInvalidSize, err)
}

func (s *LeaderboardServiceTestSuite) TestRecordResultCreatesStatsLazily() {
	s.mockStatsRepo.EXPECT().
		GetStats(s.ctx, &statsRepo.GetStatsInput{NodeID: "A"}).
		Return(nil, statsRepo.ErrStatsNotFound)

	s.mockClock.EXPECT().Now().Return(s.testTime)

	var stored *models.PlayerStats
	s.mockStatsRepo.EXPECT().
		SaveStats(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *statsRepo.SaveStatsInput) error {
			s.Equal("room:t:A", input.DedupKey)
			stored = input.Stats
			return nil
		})

	var saved []models.LeaderboardEntry
	s.expectRebuild([]*models.PlayerStats{statsWith("A", 1, 1)}, map[string]string{"A": "Ann"}, &saved)

	out, err := s.service.RecordResult(s.ctx, &RecordResultInput{NodeID: "A", Won: true, DedupKey: "room:t:A"})
	s.Require().NoError(err)
	s.False(out.Duplicate)

	s.Require().NotNil(stored)
	s.Equal(int64(1), stored.GamesPlayed)
	s.Equal(int64(1), stored.GamesWon)
	s.Equal(int64(1), stored.CurrentStreak)
	s.Equal(s.testTime, stored.LastGameAt)

	s.Require().Len(saved, 1)
	s.Equal("Ann", saved[0].PlayerName)
}

func (s *LeaderboardServiceTestSuite) TestRecordResultUpdatesStreaks() {
	existing := &models.PlayerStats{NodeID: "A", GamesPlayed: 3, GamesWon: 3, CurrentStreak: 3, BestStreak: 3}
	s.mockStatsRepo.EXPECT().
		GetStats(s.ctx, &statsRepo.GetStatsInput{NodeID: "A"}).
		Return(existing, nil)

	s.mockStatsRepo.EXPECT().
		SaveStats(s.ctx, &statsRepo.SaveStatsInput{Stats: existing}).
		Return(nil)

	var saved []models.LeaderboardEntry
	s.expectRebuild([]*models.PlayerStats{existing}, map[string]string{}, &saved)

	out, err := s.service.RecordResult(s.ctx, &RecordResultInput{NodeID: "A", Won: false, At: s.testTime})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Stats.CurrentStreak)
	s.Equal(int64(3), out.Stats.BestStreak)
	s.Equal(int64(1), out.Stats.GamesLost)
	s.Equal(out.Stats.GamesPlayed, out.Stats.GamesWon+out.Stats.GamesLost)
}

func (s *LeaderboardServiceTestSuite) TestRecordResultDuplicateSkipsRebuild() {
	s.mockStatsRepo.EXPECT().
		GetStats(s.ctx, gomock.Any()).
		Return(statsWith("A", 1, 1), nil)

	s.mockStatsRepo.EXPECT().
		SaveStats(s.ctx, gomock.Any()).
		Return(statsRepo.ErrAlreadyRecorded)

	out, err := s.service.RecordResult(s.ctx, &RecordResultInput{NodeID: "A", Won: true, At: s.testTime, DedupKey: "k"})
	s.Require().NoError(err)
	s.True(out.Duplicate)
	s.Nil(out.Stats)
}

func (s *LeaderboardServiceTestSuite) TestRecordResultRejectsEmptyNode() {
	_, err := s.service.RecordResult(s.ctx, &RecordResultInput{})
	s.True(models.IsInvalidInput(err))
}

func (s *LeaderboardServiceTestSuite) TestRebuildOrdersByWinsThenWinRate() {
	all := []*models.PlayerStats{
		statsWith("A", 10, 12),
		statsWith("B", 10, 15),
		statsWith("C", 9, 9),
	}

	var saved []models.LeaderboardEntry
	s.expectRebuild(all, map[string]string{"A": "Ann"}, &saved)

	out, err := s.service.RebuildLeaderboard(s.ctx, &RebuildLeaderboardInput{})
	s.Require().NoError(err)

	s.Equal([]string{"A", "B", "C"}, nodeIDs(out.Entries))
	s.Equal(out.Entries, saved)
	s.Equal("Ann", saved[0].PlayerName)
	s.Empty(saved[1].PlayerName)
}

func (s *LeaderboardServiceTestSuite) TestRebuildIsIdempotent() {
	all := []*models.PlayerStats{
		statsWith("D", 2, 4),
		statsWith("B", 2, 4),
		statsWith("A", 0, 0),
		statsWith("C", 2, 2),
	}

	var first, second []models.LeaderboardEntry
	s.expectRebuild(all, map[string]string{"B": "Bea"}, &first)
	s.expectRebuild(all, map[string]string{"B": "Bea"}, &second)

	_, err := s.service.RebuildLeaderboard(s.ctx, &RebuildLeaderboardInput{})
	s.Require().NoError(err)
	_, err = s.service.RebuildLeaderboard(s.ctx, &RebuildLeaderboardInput{})
	s.Require().NoError(err)

	firstJSON, err := json.Marshal(first)
	s.Require().NoError(err)
	secondJSON, err := json.Marshal(second)
	s.Require().NoError(err)
	s.Equal(firstJSON, secondJSON)

	s.Equal([]string{"C", "B", "D", "A"}, nodeIDs(first))
}

func (s *LeaderboardServiceTestSuite) TestRebuildTruncatesToSize() {
	all := make([]*models.PlayerStats, 0, 150)
	for i := 0; i < 150; i++ {
		all = append(all, statsWith(fmt.Sprintf("n%03d", i), int64(i%20), 20))
	}

	var saved []models.LeaderboardEntry
	s.expectRebuild(all, map[string]string{}, &saved)

	out, err := s.service.RebuildLeaderboard(s.ctx, &RebuildLeaderboardInput{})
	s.Require().NoError(err)
	s.Len(out.Entries, models.LeaderboardSize)
	s.Len(saved, models.LeaderboardSize)
	s.Equal(int64(19), saved[0].Wins)
}

func (s *LeaderboardServiceTestSuite) TestRankHandlesZeroGames() {
	entries := []models.LeaderboardEntry{
		{NodeID: "empty"},
		{NodeID: "loser", Losses: 1, TotalGames: 1},
		{NodeID: "winner", Wins: 1, TotalGames: 1},
	}
	Rank(entries)
	s.Equal([]string{"winner", "loser", "empty"}, nodeIDs(entries))
}

func (s *LeaderboardServiceTestSuite) TestGetPlayerStatsPassesNotFound() {
	s.mockStatsRepo.EXPECT().
		GetStats(s.ctx, &statsRepo.GetStatsInput{NodeID: "A"}).
		Return(nil, statsRepo.ErrStatsNotFound)

	_, err := s.service.GetPlayerStats(s.ctx, &GetPlayerStatsInput{NodeID: "A"})
	s.True(models.IsNotFound(err))
}
