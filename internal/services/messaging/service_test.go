package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/roshambo/internal/common/clock/mocks"
	"github.com/KirkDiggler/roshambo/internal/models"
	inboxRepo "github.com/KirkDiggler/roshambo/internal/repositories/inbox"
	inboxMocks "github.com/KirkDiggler/roshambo/internal/repositories/inbox/mocks"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	nodeMocks "github.com/KirkDiggler/roshambo/internal/repositories/node/mocks"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	directoryMocks "github.com/KirkDiggler/roshambo/internal/services/directory/mocks"
	"github.com/KirkDiggler/roshambo/internal/services/game"
	gameMocks "github.com/KirkDiggler/roshambo/internal/services/game/mocks"
	"github.com/KirkDiggler/roshambo/internal/services/leaderboard"
	leaderboardMocks "github.com/KirkDiggler/roshambo/internal/services/leaderboard/mocks"
	transportMocks "github.com/KirkDiggler/roshambo/internal/transport/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGame        *gameMocks.MockService
	mockLeaderboard *leaderboardMocks.MockService
	mockDirectory   *directoryMocks.MockService
	mockNodeRepo    *nodeMocks.MockRepository
	mockInbox       *inboxMocks.MockRepository
	mockPoster      *transportMocks.MockPoster
	mockClock       *clockMocks.MockClock
	router          Service
	ctx             context.Context

	testTime    time.Time
	coordinator models.NodeConfig
	participant models.NodeConfig
	seq         int
}

func (s *RouterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockLeaderboard = leaderboardMocks.NewMockService(s.mockCtrl)
	s.mockDirectory = directoryMocks.NewMockService(s.mockCtrl)
	s.mockNodeRepo = nodeMocks.NewMockRepository(s.mockCtrl)
	s.mockInbox = inboxMocks.NewMockRepository(s.mockCtrl)
	s.mockPoster = transportMocks.NewMockPoster(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.coordinator = models.NodeConfig{NodeID: "C", CoordinatorID: "C"}
	s.participant = models.NodeConfig{NodeID: "X", CoordinatorID: "C"}

	router, err := New(&Config{
		Game:        s.mockGame,
		Leaderboard: s.mockLeaderboard,
		Directory:   s.mockDirectory,
		NodeRepo:    s.mockNodeRepo,
		Inbox:       s.mockInbox,
		Poster:      s.mockPoster,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

// envelope wraps msg and expects its id to be new to the inbox
func (s *RouterTestSuite) envelope(from, to string, msg models.Message) *models.Envelope {
	s.seq++
	env, err := models.NewEnvelope(string(rune('a'+s.seq)), from, to, msg, s.testTime)
	s.Require().NoError(err)
	return env
}

func (s *RouterTestSuite) expectFirstSeen(env *models.Envelope) {
	s.mockInbox.EXPECT().
		MarkSeen(s.ctx, &inboxRepo.MarkSeenInput{EnvelopeID: env.ID}).
		Return(&inboxRepo.MarkSeenOutput{First: true}, nil)
}

func (s *RouterTestSuite) handle(node models.NodeConfig, env *models.Envelope) *HandleOutput {
	out, err := s.router.Handle(s.ctx, &HandleInput{Node: node, Envelope: env})
	s.Require().NoError(err)
	return out
}

func (s *RouterTestSuite) finishedRoom() *models.Room {
	room := models.NewRoom("r1", s.testTime, false)
	room.AddPlayer("X", "")
	room.AddPlayer("Y", "")
	room.Result = models.GameResult{Player1Wins: 3, Player2Wins: 1, Winner: "X", IsFinished: true}
	room.RoundNumber = 4
	return room
}

func (s *RouterTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Game: s.mockGame})
	s.Equal(ErrNilLeaderboard, err)
}

func (s *RouterTestSuite) TestHandleRequiresEnvelope() {
	_, err := s.router.Handle(s.ctx, &HandleInput{Node: s.coordinator})
	s.Equal(ErrNilEnvelope, err)
}

func (s *RouterTestSuite) TestBouncedEnvelopeHasNoEffect() {
	env := s.envelope("X", "C", &models.SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: models.ChoiceRock}).Bounce()

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeBounced, out.Outcome)
	s.Zero(out.Sent)
}

func (s *RouterTestSuite) TestRedeliveredEnvelopeIsDropped() {
	env := s.envelope("X", "C", &models.SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: models.ChoiceRock})
	s.mockInbox.EXPECT().
		MarkSeen(s.ctx, &inboxRepo.MarkSeenInput{EnvelopeID: env.ID}).
		Return(&inboxRepo.MarkSeenOutput{First: false}, nil)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeDuplicate, out.Outcome)
}

func (s *RouterTestSuite) TestInboxFailureIsReturned() {
	env := s.envelope("X", "C", &models.PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: true})
	s.mockInbox.EXPECT().MarkSeen(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.router.Handle(s.ctx, &HandleInput{Node: s.participant, Envelope: env})
	s.Error(err)
}

func (s *RouterTestSuite) TestUnknownKindIsDropped() {
	env := &models.Envelope{ID: "z", Kind: "teleport", From: "X", To: "C", Payload: []byte(`{}`)}
	s.expectFirstSeen(env)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeDropped, out.Outcome)
}

func (s *RouterTestSuite) TestCoordinatorKindsIgnoredElsewhere() {
	messages := []models.Message{
		&models.JoinRoom{RoomID: "r1", PlayerNode: "Y"},
		&models.SubmitChoice{RoomID: "r1", PlayerNode: "Y", Choice: models.ChoicePaper},
		&models.UpdateLeaderboard{PlayerNode: "Y", Won: true},
		&models.UpdatePlayerName{PlayerNode: "Y", PlayerName: "Yan"},
	}

	for _, msg := range messages {
		env := s.envelope("Y", "X", msg)
		s.expectFirstSeen(env)

		out := s.handle(s.participant, env)
		s.Equal(OutcomeIgnored, out.Outcome, "kind %s", msg.Kind())
		s.Zero(out.Sent)
	}

	env := s.envelope("Y", "X", &models.JoinRoom{RoomID: "r1", PlayerNode: "Y"})
	s.expectFirstSeen(env)
	s.Equal(OutcomeIgnored, s.handle(models.NodeConfig{NodeID: "X"}, env).Outcome)
}

func (s *RouterTestSuite) TestCoordinatorMessagesFromOtherSendersIgnored() {
	messages := []models.Message{
		&models.PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: true},
		&models.RoundCompleted{RoomID: "r1", RoundNumber: 1, Outcome: models.RoundOutcomeDraw},
		&models.GameFinished{RoomID: "r1", Winner: "X", DedupKey: "r1:t:X"},
	}

	for _, msg := range messages {
		env := s.envelope("Y", "X", msg)
		s.expectFirstSeen(env)

		out := s.handle(s.participant, env)
		s.Equal(OutcomeIgnored, out.Outcome, "kind %s", msg.Kind())
		s.Zero(out.Sent)
	}
}

func (s *RouterTestSuite) TestJoinRoomEchoesSuccess() {
	env := s.envelope("X", "C", &models.JoinRoom{RoomID: "r1", PlayerNode: "X", PlayerName: "Xena"})
	s.expectFirstSeen(env)
	s.mockGame.EXPECT().
		JoinRoom(s.ctx, &game.JoinRoomInput{Node: s.coordinator, RoomID: "r1", PlayerNode: "X", PlayerName: "Xena"}).
		Return(&game.JoinRoomOutput{PlayerNumber: 1}, nil)
	s.mockPoster.EXPECT().
		Post(s.ctx, "X", &models.PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: true}).
		Return(nil)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeApplied, out.Outcome)
	s.Equal(1, out.Sent)
}

func (s *RouterTestSuite) TestJoinRoomEchoesFailure() {
	env := s.envelope("Z", "C", &models.JoinRoom{RoomID: "r1", PlayerNode: "Z"})
	s.expectFirstSeen(env)
	s.mockGame.EXPECT().JoinRoom(s.ctx, gomock.Any()).Return(nil, game.ErrRoomFull)
	s.mockPoster.EXPECT().
		Post(s.ctx, "Z", &models.PlayerJoined{RoomID: "r1", PlayerNode: "Z", Success: false}).
		Return(nil)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeRejected, out.Outcome)
	s.Equal(1, out.Sent)
}

func (s *RouterTestSuite) TestSubmitChoiceWithoutResolution() {
	env := s.envelope("X", "C", &models.SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: models.ChoiceRock})
	s.expectFirstSeen(env)
	s.mockGame.EXPECT().
		SubmitChoice(s.ctx, &game.SubmitChoiceInput{Node: s.coordinator, RoomID: "r1", PlayerNode: "X", Choice: models.ChoiceRock}).
		Return(&game.SubmitChoiceOutput{Room: models.NewRoom("r1", s.testTime, false)}, nil)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeApplied, out.Outcome)
	s.Zero(out.Sent)
}

func (s *RouterTestSuite) TestSubmitChoiceRejectedIsNoOp() {
	env := s.envelope("Z", "C", &models.SubmitChoice{RoomID: "r1", PlayerNode: "Z", Choice: models.ChoiceRock})
	s.expectFirstSeen(env)
	s.mockGame.EXPECT().SubmitChoice(s.ctx, gomock.Any()).Return(nil, game.ErrPlayerNotInRoom)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeRejected, out.Outcome)
	s.Zero(out.Sent)
}

func (s *RouterTestSuite) TestSubmitChoiceInfrastructureFailure() {
	env := s.envelope("X", "C", &models.SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: models.ChoiceRock})
	s.expectFirstSeen(env)
	s.mockGame.EXPECT().SubmitChoice(s.ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.router.Handle(s.ctx, &HandleInput{Node: s.coordinator, Envelope: env})
	s.Error(err)
}

func (s *RouterTestSuite) TestDecidingRoundFansOutFourMessages() {
	room := s.finishedRoom()
	room.RoundHistory = append(room.RoundHistory, models.RoundHistory{
		RoundNumber:   4,
		Player1Choice: models.ChoicePaper,
		Player2Choice: models.ChoiceRock,
		Outcome:       models.RoundOutcomeWin,
		Winner:        "X",
	})

	env := s.envelope("X", "C", &models.SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: models.ChoicePaper})
	s.expectFirstSeen(env)
	s.mockGame.EXPECT().
		SubmitChoice(s.ctx, gomock.Any()).
		Return(&game.SubmitChoiceOutput{Room: room, Round: &room.RoundHistory[0], Finished: true}, nil)

	completed := &models.RoundCompleted{
		RoomID:        "r1",
		RoundNumber:   4,
		Player1Choice: models.ChoicePaper,
		Player2Choice: models.ChoiceRock,
		RoundWinner:   "X",
		Outcome:       models.RoundOutcomeWin,
		Result:        room.Result,
	}
	gomock.InOrder(
		s.mockPoster.EXPECT().Post(s.ctx, "X", completed).Return(nil),
		s.mockPoster.EXPECT().Post(s.ctx, "Y", completed).Return(nil),
		s.mockPoster.EXPECT().Post(s.ctx, "X", &models.GameFinished{
			RoomID:      "r1",
			Winner:      "X",
			FinalResult: room.Result,
			DedupKey:    room.CompletionKey("X"),
		}).Return(nil),
		s.mockPoster.EXPECT().Post(s.ctx, "Y", &models.GameFinished{
			RoomID:      "r1",
			Winner:      "X",
			FinalResult: room.Result,
			DedupKey:    room.CompletionKey("Y"),
		}).Return(errors.New("bus down")),
	)

	out := s.handle(s.coordinator, env)
	s.Equal(OutcomeApplied, out.Outcome)
	s.Equal(3, out.Sent)
}

func (s *RouterTestSuite) TestUpdateLeaderboard() {
	env := s.envelope("X", "C", &models.UpdateLeaderboard{PlayerNode: "X", Won: true, DedupKey: "k1"})
	s.expectFirstSeen(env)
	s.mockLeaderboard.EXPECT().
		RecordResult(s.ctx, &leaderboard.RecordResultInput{NodeID: "X", Won: true, DedupKey: "k1"}).
		Return(&leaderboard.RecordResultOutput{Stats: models.NewPlayerStats("X")}, nil)

	s.Equal(OutcomeApplied, s.handle(s.coordinator, env).Outcome)

	env = s.envelope("X", "C", &models.UpdateLeaderboard{PlayerNode: "X", Won: true, DedupKey: "k1"})
	s.expectFirstSeen(env)
	s.mockLeaderboard.EXPECT().
		RecordResult(s.ctx, gomock.Any()).
		Return(&leaderboard.RecordResultOutput{Duplicate: true}, nil)

	s.Equal(OutcomeDuplicate, s.handle(s.coordinator, env).Outcome)
}

func (s *RouterTestSuite) TestUpdatePlayerName() {
	env := s.envelope("X", "C", &models.UpdatePlayerName{PlayerNode: "X", PlayerName: "Xena"})
	s.expectFirstSeen(env)
	s.mockDirectory.EXPECT().
		RecordName(s.ctx, &directory.RecordNameInput{Node: s.coordinator, PlayerNode: "X", Name: "Xena"}).
		Return(nil)

	s.Equal(OutcomeApplied, s.handle(s.coordinator, env).Outcome)
}

func (s *RouterTestSuite) TestPlayerJoinedFoldsIntoMirror() {
	env := s.envelope("C", "X", &models.PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: true})
	s.expectFirstSeen(env)
	s.mockNodeRepo.EXPECT().GetMirror(s.ctx, &nodeRepo.GetMirrorInput{}).Return(models.NewMirror(), nil)
	s.mockNodeRepo.EXPECT().
		SaveMirror(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *nodeRepo.SaveMirrorInput) error {
			s.Equal([]string{"r1"}, input.Mirror.MyRooms)
			s.Equal("r1", input.Mirror.MyCurrentRoom)
			return nil
		})

	s.Equal(OutcomeApplied, s.handle(s.participant, env).Outcome)
}

func (s *RouterTestSuite) TestPlayerJoinedForAnotherNodeOrFailedIsNotFolded() {
	env := s.envelope("C", "X", &models.PlayerJoined{RoomID: "r1", PlayerNode: "Y", Success: true})
	s.expectFirstSeen(env)
	s.Equal(OutcomeIgnored, s.handle(s.participant, env).Outcome)

	env = s.envelope("C", "X", &models.PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: false})
	s.expectFirstSeen(env)
	s.Equal(OutcomeRejected, s.handle(s.participant, env).Outcome)
}

func (s *RouterTestSuite) TestRoundCompletedOnlyLogs() {
	env := s.envelope("C", "X", &models.RoundCompleted{RoomID: "r1", RoundNumber: 1, Outcome: models.RoundOutcomeDraw})
	s.expectFirstSeen(env)

	s.Equal(OutcomeApplied, s.handle(s.participant, env).Outcome)
}

func (s *RouterTestSuite) TestGameFinishedFoldsStatsOnce() {
	mirror := models.NewMirror()
	mirror.JoinedRoom("r1")
	mirror.JoinedRoom("r2")

	env := s.envelope("C", "X", &models.GameFinished{RoomID: "r1", Winner: "X", DedupKey: "r1:t:X"})
	s.expectFirstSeen(env)
	s.mockNodeRepo.EXPECT().GetMirror(s.ctx, gomock.Any()).Return(mirror, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockNodeRepo.EXPECT().
		SaveMirror(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *nodeRepo.SaveMirrorInput) error {
			s.Equal("r1:t:X", input.DedupKey)
			s.Equal([]string{"r2"}, input.Mirror.MyRooms)
			s.Equal("r2", input.Mirror.MyCurrentRoom)
			s.Require().NotNil(input.Mirror.MyStats)
			s.Equal(int64(1), input.Mirror.MyStats.GamesWon)
			s.Equal(s.testTime, input.Mirror.MyStats.LastGameAt)
			return nil
		})

	s.Equal(OutcomeApplied, s.handle(s.participant, env).Outcome)

	redelivered := s.envelope("C", "X", &models.GameFinished{RoomID: "r1", Winner: "X", DedupKey: "r1:t:X"})
	s.expectFirstSeen(redelivered)
	s.mockNodeRepo.EXPECT().GetMirror(s.ctx, gomock.Any()).Return(models.NewMirror(), nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockNodeRepo.EXPECT().SaveMirror(s.ctx, gomock.Any()).Return(nodeRepo.ErrAlreadyApplied)

	s.Equal(OutcomeDuplicate, s.handle(s.participant, redelivered).Outcome)
}
