package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

type RedisTransportTestSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	redisClient *redis.Client
	alpha       *Transport
	beta        *Transport
	ctx         context.Context
	testNow     time.Time
}

func (s *RedisTransportTestSuite) SetupTest() {
	var err error
	s.miniRedis, err = miniredis.Run()
	s.Require().NoError(err)

	s.redisClient = redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()})
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	s.alpha, err = New(s.ctx, &Config{RedisClient: s.redisClient, NodeID: "alpha", PollTimeout: 100 * time.Millisecond})
	s.Require().NoError(err)
	s.beta, err = New(s.ctx, &Config{RedisClient: s.redisClient, NodeID: "beta", PollTimeout: 100 * time.Millisecond})
	s.Require().NoError(err)
}

func (s *RedisTransportTestSuite) TearDownTest() {
	s.redisClient.Close()
	s.miniRedis.Close()
}

func TestRedisTransportSuite(t *testing.T) {
	suite.Run(t, new(RedisTransportTestSuite))
}

func (s *RedisTransportTestSuite) envelope(id, to string) *models.Envelope {
	env, err := models.NewEnvelope(id, "alpha", to, &models.SubmitChoice{RoomID: "r1", PlayerNode: "alpha", Choice: models.ChoiceRock}, s.testNow)
	s.Require().NoError(err)
	return env
}

func (s *RedisTransportTestSuite) TestNewValidatesConfig() {
	_, err := New(s.ctx, nil)
	s.Error(err)

	_, err = New(s.ctx, &Config{NodeID: "alpha"})
	s.Error(err)

	_, err = New(s.ctx, &Config{RedisClient: s.redisClient})
	s.Equal(transport.ErrEmptyNodeID, err)
}

func (s *RedisTransportTestSuite) TestNewRegistersNode() {
	members, err := s.miniRedis.Members(DefaultPrefix + nodesKey)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"alpha", "beta"}, members)
}

func (s *RedisTransportTestSuite) TestSendAndPollInOrder() {
	s.Require().NoError(s.alpha.Send(s.ctx, s.envelope("1", "beta")))
	s.Require().NoError(s.alpha.Send(s.ctx, s.envelope("2", "beta")))

	first, err := s.beta.Poll(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(first)
	s.Equal("1", first.ID)
	s.Equal(s.testNow, first.SentAt)

	second, err := s.beta.Poll(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(second)
	s.Equal("2", second.ID)

	msg, err := second.Decode()
	s.Require().NoError(err)
	s.Equal(models.ChoiceRock, msg.(*models.SubmitChoice).Choice)
}

func (s *RedisTransportTestSuite) TestUnregisteredDestinationBounces() {
	s.Require().NoError(s.alpha.Send(s.ctx, s.envelope("1", "gamma")))

	s.False(s.miniRedis.Exists(DefaultPrefix + inboxKeyPrefix + "gamma"))

	env, err := s.alpha.Poll(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(env)
	s.True(env.Bounced)
	s.Equal("gamma", env.To)
	s.Equal(models.KindSubmitChoice, env.Kind)
}

func (s *RedisTransportTestSuite) TestPollEmptyInbox() {
	env, err := s.beta.Poll(s.ctx)
	s.NoError(err)
	s.Nil(env)
}

func (s *RedisTransportTestSuite) TestPollDropsGarbage() {
	_, err := s.miniRedis.Push(DefaultPrefix+inboxKeyPrefix+"beta", "{not json")
	s.Require().NoError(err)

	env, err := s.beta.Poll(s.ctx)
	s.NoError(err)
	s.Nil(env)
}

func (s *RedisTransportTestSuite) TestClosedTransportRejectsSend() {
	s.Require().NoError(s.alpha.Close())
	s.Equal(transport.ErrClosed, s.alpha.Send(s.ctx, s.envelope("1", "beta")))
}

func (s *RedisTransportTestSuite) TestReceiveDeliversUntilCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	received := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.beta.Receive(ctx, func(_ context.Context, env *models.Envelope) {
			received <- env.ID
		})
	}()

	s.Require().NoError(s.alpha.Send(s.ctx, s.envelope("1", "beta")))

	select {
	case id := <-received:
		s.Equal("1", id)
	case <-time.After(2 * time.Second):
		s.FailNow("envelope not received")
	}

	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		s.FailNow("receive did not stop")
	}
}

func (s *RedisTransportTestSuite) TestReceiveHandsOverEnvelopePoppedDuringShutdown() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	client := redis.NewClient(&redis.Options{Addr: s.miniRedis.Addr()})
	defer client.Close()
	client.AddHook(&cancelAfterPop{cancel: cancel})

	gamma, err := New(s.ctx, &Config{RedisClient: client, NodeID: "gamma", PollTimeout: 100 * time.Millisecond})
	s.Require().NoError(err)
	s.Require().NoError(s.alpha.Send(s.ctx, s.envelope("1", "gamma")))

	var received []string
	err = gamma.Receive(ctx, func(handlerCtx context.Context, env *models.Envelope) {
		s.NoError(handlerCtx.Err())
		received = append(received, env.ID)
	})

	s.ErrorIs(err, context.Canceled)
	s.Equal([]string{"1"}, received)
}

// cancelAfterPop cancels the receive context as soon as a BLPOP returns
type cancelAfterPop struct {
	cancel context.CancelFunc
}

func (h *cancelAfterPop) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *cancelAfterPop) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if cmd.Name() == "blpop" && err == nil {
			h.cancel()
		}
		return err
	}
}

func (h *cancelAfterPop) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
