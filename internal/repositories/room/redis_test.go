package room

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/repositories/keys"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	keys    keys.Space
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.keys = keys.Space("test:coord:")
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Keys:        s.keys,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) create(id string, offset time.Duration, private bool) *models.Room {
	room := models.NewRoom(id, s.testNow.Add(offset), private)
	s.Require().NoError(s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: room}))
	return room
}

func (s *RedisRepositoryTestSuite) availableIDs() []string {
	out, err := s.repo.ListAvailable(context.Background(), &ListAvailableInput{})
	s.Require().NoError(err)

	ids := make([]string, 0, len(out.Rooms))
	for _, r := range out.Rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetRoom() {
	s.create("r1", 0, false)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "r1"})
	s.Require().NoError(err)

	s.Equal("r1", room.ID)
	s.Equal(1, room.RoundNumber)
	s.True(s.testNow.Equal(room.CreatedAt))
	s.False(room.Private)
	s.Empty(room.RoundHistory)
}

func (s *RedisRepositoryTestSuite) TestCreateRoomRejectsTakenID() {
	original := s.create("r1", 0, false)
	original.AddPlayer("X", "Xavier")
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: original}))

	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: models.NewRoom("r1", s.testNow.Add(time.Hour), true),
	})
	s.Equal(ErrRoomAlreadyExists, err)
	s.True(models.IsConflict(err))

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "r1"})
	s.Require().NoError(err)
	s.Equal("X", room.Player1, "existing room must be untouched")
	s.False(room.Private)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "missing"})
	s.Equal(ErrRoomNotFound, err)
	s.True(models.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPrivateRoomsAreNotAvailable() {
	s.create("public", 0, false)
	s.create("private", time.Second, true)

	s.Equal([]string{"public"}, s.availableIDs())
}

func (s *RedisRepositoryTestSuite) TestFullRoomLeavesAvailableIndex() {
	room := s.create("r1", 0, false)
	s.create("r2", time.Second, false)
	s.Equal([]string{"r1", "r2"}, s.availableIDs())

	room.AddPlayer("X", "")
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))
	s.Equal([]string{"r1", "r2"}, s.availableIDs(), "one open slot left")

	room.AddPlayer("Y", "")
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))
	s.Equal([]string{"r2"}, s.availableIDs())
}

func (s *RedisRepositoryTestSuite) TestListRoomsIncludesEverything() {
	s.create("b", time.Second, true)
	finished := s.create("a", 0, false)
	finished.AddPlayer("X", "")
	finished.AddPlayer("Y", "")
	finished.Result.IsFinished = true
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: finished}))

	out, err := s.repo.ListRooms(context.Background(), &ListRoomsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Rooms, 2)
	s.Equal("a", out.Rooms[0].ID)
	s.Equal("b", out.Rooms[1].ID)
	s.True(out.Rooms[0].Result.IsFinished)
}

func (s *RedisRepositoryTestSuite) TestSaveRoomRoundTripsChoices() {
	room := s.create("r1", 0, false)
	room.AddPlayer("X", "Xavier")
	room.AddPlayer("Y", "Yolanda")
	room.SetChoice("X", models.ChoiceRock)
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))

	got, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "r1"})
	s.Require().NoError(err)
	s.Require().NotNil(got.Player1Choice)
	s.Equal(models.ChoiceRock, *got.Player1Choice)
	s.Nil(got.Player2Choice)
	s.Equal("Yolanda", got.Player2Name)
}

func (s *RedisRepositoryTestSuite) TestKeysAreNamespaced() {
	s.create("r1", 0, false)
	s.True(s.mr.Exists("test:coord:room:r1"))
	s.True(s.mr.Exists("test:coord:rooms:available"))
}
