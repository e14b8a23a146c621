package player

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Keys:        keys.Space("test:"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)

	var repo Repository
	repo, err = NewRedis(&Config{RedisClient: s.client, Keys: keys.Space("other:")})
	s.Require().NoError(err)
	s.NotNil(repo)
}

func (s *RedisRepositoryTestSuite) TestSetNameLastWriterWins() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SetName(ctx, &SetNameInput{NodeID: "A", Name: "Ann"}))
	s.Require().NoError(s.repo.SetName(ctx, &SetNameInput{NodeID: "A", Name: "Annie"}))

	name, err := s.repo.GetName(ctx, &GetNameInput{NodeID: "A"})
	s.Require().NoError(err)
	s.Equal("Annie", name)
}

func (s *RedisRepositoryTestSuite) TestGetNameNotFound() {
	_, err := s.repo.GetName(context.Background(), &GetNameInput{NodeID: "A"})
	s.Equal(ErrPlayerNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetNamesSkipsUnnamed() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SetName(ctx, &SetNameInput{NodeID: "A", Name: "Ann"}))
	s.Require().NoError(s.repo.SetName(ctx, &SetNameInput{NodeID: "C", Name: "Cy"}))

	out, err := s.repo.GetNames(ctx, &GetNamesInput{NodeIDs: []string{"A", "B", "C"}})
	s.Require().NoError(err)
	s.Equal(map[string]string{"A": "Ann", "C": "Cy"}, out.Names)
}

func (s *RedisRepositoryTestSuite) TestListPlayers() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SetName(ctx, &SetNameInput{NodeID: "B", Name: "Bea"}))
	s.Require().NoError(s.repo.SetName(ctx, &SetNameInput{NodeID: "A", Name: "Ann"}))

	out, err := s.repo.ListPlayers(ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 2)
	s.Equal("A", out.Players[0].NodeID)
	s.Equal("Ann", out.Players[0].Name)
	s.Equal("B", out.Players[1].NodeID)
}
