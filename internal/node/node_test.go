package node

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/roshambo/internal/models"
	nodeRepo "github.com/KirkDiggler/roshambo/internal/repositories/node"
	nodeMocks "github.com/KirkDiggler/roshambo/internal/repositories/node/mocks"
	"github.com/KirkDiggler/roshambo/internal/services/directory"
	directoryMocks "github.com/KirkDiggler/roshambo/internal/services/directory/mocks"
	"github.com/KirkDiggler/roshambo/internal/services/game"
	gameMocks "github.com/KirkDiggler/roshambo/internal/services/game/mocks"
	"github.com/KirkDiggler/roshambo/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/roshambo/internal/services/messaging/mocks"
	transportMocks "github.com/KirkDiggler/roshambo/internal/transport/mocks"
)

type NodeTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockNodeRepo  *nodeMocks.MockRepository
	mockGame      *gameMocks.MockService
	mockDirectory *directoryMocks.MockService
	mockRouter    *messagingMocks.MockService
	mockPoster    *transportMocks.MockPoster
	node          *Node
	ctx           context.Context
	testTime      time.Time
}

func (s *NodeTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNodeRepo = nodeMocks.NewMockRepository(s.mockCtrl)
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockDirectory = directoryMocks.NewMockService(s.mockCtrl)
	s.mockRouter = messagingMocks.NewMockService(s.mockCtrl)
	s.mockPoster = transportMocks.NewMockPoster(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	var err error
	s.node, err = New(&Config{
		NodeID:    "X",
		NodeRepo:  s.mockNodeRepo,
		Game:      s.mockGame,
		Directory: s.mockDirectory,
		Router:    s.mockRouter,
		Poster:    s.mockPoster,
	})
	s.Require().NoError(err)
}

func (s *NodeTestSuite) TearDownTest() {
	s.node.Stop()
	s.mockCtrl.Finish()
}

func TestNodeSuite(t *testing.T) {
	suite.Run(t, new(NodeTestSuite))
}

// start boots the node with cfg as its stored configuration, nil meaning none
func (s *NodeTestSuite) start(cfg *models.NodeConfig) {
	if cfg == nil {
		s.mockNodeRepo.EXPECT().GetConfig(gomock.Any(), gomock.Any()).Return(nil, nodeRepo.ErrConfigNotFound)
	} else {
		s.mockNodeRepo.EXPECT().GetConfig(gomock.Any(), gomock.Any()).Return(cfg, nil)
	}
	s.Require().NoError(s.node.Start(s.ctx))
}

func (s *NodeTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{NodeID: "X", NodeRepo: s.mockNodeRepo})
	s.Equal(ErrNilGame, err)
}

func (s *NodeTestSuite) TestExecuteBeforeStart() {
	_, err := s.node.Execute(s.ctx, ResetLeaderboard{})
	s.Equal(ErrNotStarted, err)
}

func (s *NodeTestSuite) TestStartRejectsForeignConfig() {
	s.mockNodeRepo.EXPECT().
		GetConfig(gomock.Any(), gomock.Any()).
		Return(&models.NodeConfig{NodeID: "Y", CoordinatorID: "C"}, nil)

	s.Error(s.node.Start(s.ctx))
}

func (s *NodeTestSuite) TestStartLoadsStoredConfig() {
	s.start(&models.NodeConfig{NodeID: "X", CoordinatorID: "C"})

	s.Equal(models.RoleParticipant, s.node.NodeConfig().Role())
}

func (s *NodeTestSuite) TestSetupLeaderboardOnce() {
	s.start(nil)
	s.Equal(models.RoleUnconfigured, s.node.NodeConfig().Role())

	s.mockNodeRepo.EXPECT().
		SetupConfig(gomock.Any(), &nodeRepo.SetupConfigInput{Config: &models.NodeConfig{NodeID: "X", CoordinatorID: "X"}}).
		Return(nil)

	result, err := s.node.Execute(s.ctx, SetupLeaderboard{CoordinatorID: "X"})
	s.Require().NoError(err)
	s.True(result.Config.IsCoordinator())
	s.True(s.node.NodeConfig().IsCoordinator())

	_, err = s.node.Execute(s.ctx, SetupLeaderboard{CoordinatorID: "Y"})
	s.Equal(models.ErrAlreadyConfigured, err)
	s.True(s.node.NodeConfig().IsCoordinator())
}

func (s *NodeTestSuite) TestSetupLeaderboardRequiresCoordinator() {
	s.start(nil)

	_, err := s.node.Execute(s.ctx, SetupLeaderboard{})
	s.Equal(ErrEmptyCoordinator, err)
}

func (s *NodeTestSuite) TestCommandsOnUnconfiguredNode() {
	s.start(nil)

	_, err := s.node.Execute(s.ctx, JoinRoom{RoomID: "r1"})
	s.Equal(models.ErrNotConfigured, err)

	_, err = s.node.Execute(s.ctx, SubmitChoice{RoomID: "r1", Choice: models.ChoiceRock})
	s.Equal(models.ErrNotConfigured, err)
}

func (s *NodeTestSuite) TestJoinRoomSendsStoredName() {
	s.start(&models.NodeConfig{NodeID: "X", CoordinatorID: "C"})

	mirror := models.NewMirror()
	mirror.MyPlayerName = "Xena"
	s.mockNodeRepo.EXPECT().GetMirror(gomock.Any(), gomock.Any()).Return(mirror, nil)
	s.mockPoster.EXPECT().
		Post(gomock.Any(), "C", &models.JoinRoom{RoomID: "r1", PlayerNode: "X", PlayerName: "Xena"}).
		Return(nil)

	result, err := s.node.Execute(s.ctx, JoinRoom{RoomID: "r1"})
	s.Require().NoError(err)
	s.True(result.Sent)
}

func (s *NodeTestSuite) TestCoordinatorSendsToItself() {
	s.start(&models.NodeConfig{NodeID: "X", CoordinatorID: "X"})

	s.mockPoster.EXPECT().
		Post(gomock.Any(), "X", &models.SubmitChoice{RoomID: "r1", PlayerNode: "X", Choice: models.ChoicePaper}).
		Return(nil)

	result, err := s.node.Execute(s.ctx, SubmitChoice{RoomID: "r1", Choice: models.ChoicePaper})
	s.Require().NoError(err)
	s.True(result.Sent)
}

func (s *NodeTestSuite) TestSendFailureIsNotACommandError() {
	s.start(&models.NodeConfig{NodeID: "X", CoordinatorID: "C"})

	s.mockPoster.EXPECT().Post(gomock.Any(), "C", gomock.Any()).Return(errors.New("bus down"))

	result, err := s.node.Execute(s.ctx, SubmitChoice{RoomID: "r1", Choice: models.ChoiceRock})
	s.Require().NoError(err)
	s.False(result.Sent)
}

func (s *NodeTestSuite) TestSubmitChoiceValidatesInput() {
	s.start(&models.NodeConfig{NodeID: "X", CoordinatorID: "C"})

	_, err := s.node.Execute(s.ctx, SubmitChoice{RoomID: "r1", Choice: "lizard"})
	s.Equal(ErrInvalidChoice, err)

	_, err = s.node.Execute(s.ctx, SubmitChoice{Choice: models.ChoiceRock})
	s.Equal(ErrEmptyRoomID, err)
}

func (s *NodeTestSuite) TestCreateRoomPassesConfig() {
	cfg := models.NodeConfig{NodeID: "X", CoordinatorID: "X"}
	s.start(&cfg)

	room := models.NewRoom("r1", s.testTime, true)
	s.mockGame.EXPECT().
		CreateRoom(gomock.Any(), &game.CreateRoomInput{Node: cfg, RoomID: "r1", Private: true}).
		Return(&game.CreateRoomOutput{Room: room}, nil)

	result, err := s.node.Execute(s.ctx, CreateRoom{RoomID: "r1", Private: true})
	s.Require().NoError(err)
	s.Same(room, result.Room)
}

func (s *NodeTestSuite) TestSetPlayerName() {
	cfg := models.NodeConfig{NodeID: "X", CoordinatorID: "C"}
	s.start(&cfg)

	s.mockDirectory.EXPECT().
		SetName(gomock.Any(), &directory.SetNameInput{Node: cfg, Name: "Xena"}).
		Return(&directory.SetNameOutput{Directory: true}, nil)

	result, err := s.node.Execute(s.ctx, SetPlayerName{Name: "Xena"})
	s.Require().NoError(err)
	s.True(result.Sent)
}

func (s *NodeTestSuite) TestResetLeaderboard() {
	cfg := models.NodeConfig{NodeID: "X", CoordinatorID: "X"}
	s.start(&cfg)

	s.mockGame.EXPECT().
		Reset(gomock.Any(), &game.ResetInput{Node: cfg}).
		Return(&game.ResetOutput{RoomsDeleted: 2, StatsDeleted: 1}, nil)

	result, err := s.node.Execute(s.ctx, ResetLeaderboard{})
	s.Require().NoError(err)
	s.Equal(2, result.RoomsDeleted)
	s.Equal(1, result.StatsDeleted)
}

func (s *NodeTestSuite) TestApplyPassesCurrentConfig() {
	cfg := models.NodeConfig{NodeID: "X", CoordinatorID: "C"}
	s.start(&cfg)

	env, err := models.NewEnvelope("e1", "C", "X", &models.PlayerJoined{RoomID: "r1", PlayerNode: "X", Success: true}, s.testTime)
	s.Require().NoError(err)

	s.mockRouter.EXPECT().
		Handle(gomock.Any(), &messaging.HandleInput{Node: cfg, Envelope: env}).
		Return(&messaging.HandleOutput{Outcome: messaging.OutcomeApplied}, nil)

	out, err := s.node.Apply(s.ctx, env)
	s.Require().NoError(err)
	s.Equal(messaging.OutcomeApplied, out.Outcome)
}

func (s *NodeTestSuite) TestRequestsAreProcessedInOrder() {
	cfg := models.NodeConfig{NodeID: "X", CoordinatorID: "C"}
	s.start(&cfg)

	handled := make(chan string, 3)
	s.mockRouter.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.HandleInput) (*messaging.HandleOutput, error) {
			handled <- input.Envelope.ID
			return &messaging.HandleOutput{Outcome: messaging.OutcomeApplied}, nil
		}).
		Times(3)

	for _, id := range []string{"e1", "e2", "e3"} {
		env, err := models.NewEnvelope(id, "C", "X", &models.RoundCompleted{RoomID: "r1"}, s.testTime)
		s.Require().NoError(err)
		s.node.Handle(s.ctx, env)
	}

	for _, want := range []string{"e1", "e2", "e3"} {
		select {
		case got := <-handled:
			s.Equal(want, got)
		case <-time.After(time.Second):
			s.FailNow("envelope not handled")
		}
	}
}

func (s *NodeTestSuite) TestStopEndsLoop() {
	s.start(nil)
	s.node.Stop()

	select {
	case <-s.node.Done():
	case <-time.After(time.Second):
		s.FailNow("loop did not stop")
	}

	_, err := s.node.Execute(s.ctx, ResetLeaderboard{})
	s.Equal(ErrStopped, err)
}
