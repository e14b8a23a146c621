// Package kafka carries envelopes over one shared topic. Messages are keyed
// by destination so every sender to receiver pair stays on one partition, and
// each node reads the whole topic in its own consumer group.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roshambo/internal/models"
	"github.com/KirkDiggler/roshambo/internal/transport"
)

// Config holds configuration for the kafka transport
type Config struct {
	Producer sarama.SyncProducer

	// ConsumerGroup is required for Receive only
	ConsumerGroup sarama.ConsumerGroup

	Topic  string
	NodeID string
	Logger *zap.Logger
}

// Transport is a node's kafka endpoint
type Transport struct {
	producer sarama.SyncProducer
	group    sarama.ConsumerGroup
	topic    string
	nodeID   string
	logger   *zap.Logger
}

var _ transport.Transport = (*Transport)(nil)

// NewSaramaConfig returns the client settings both sides rely on
func NewSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_0_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true
	return cfg
}

// Dial connects a producer and a per-node consumer group to brokers
func Dial(brokers []string, topic, groupID, nodeID string, logger *zap.Logger) (*Transport, error) {
	saramaConfig := NewSaramaConfig()

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	group, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create kafka consumer group: %w", err)
	}

	return New(&Config{
		Producer:      producer,
		ConsumerGroup: group,
		Topic:         topic,
		NodeID:        nodeID,
		Logger:        logger,
	})
}

// New wraps an existing producer and consumer group
func New(cfg *Config) (*Transport, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Producer == nil {
		return nil, errors.New("producer cannot be nil")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic cannot be empty")
	}
	if cfg.NodeID == "" {
		return nil, transport.ErrEmptyNodeID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Transport{
		producer: cfg.Producer,
		group:    cfg.ConsumerGroup,
		topic:    cfg.Topic,
		nodeID:   cfg.NodeID,
		logger:   logger,
	}, nil
}

func (t *Transport) produce(key string, env *models.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	_, _, err = t.producer.SendMessage(&sarama.ProducerMessage{
		Topic: t.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	})
	return err
}

// Send publishes env keyed by its destination. When the broker rejects it a
// bounced copy is published back to this node instead.
func (t *Transport) Send(_ context.Context, env *models.Envelope) error {
	if err := transport.Validate(env); err != nil {
		return err
	}

	err := t.produce(env.To, env)
	if err == nil {
		return nil
	}

	t.logger.Warn("failed to publish envelope, bouncing",
		zap.Error(err),
		zap.String("envelope_id", env.ID),
		zap.String("to", env.To),
	)

	if bounceErr := t.produce(t.nodeID, env.Bounce()); bounceErr != nil {
		return fmt.Errorf("failed to publish envelope: %w", errors.Join(err, bounceErr))
	}
	return nil
}

// addressedTo reports whether env belongs to nodeID. A bounce keeps its
// original addressing and belongs to the sender.
func addressedTo(env *models.Envelope, nodeID string) bool {
	if env.Bounced {
		return env.From == nodeID
	}
	return env.To == nodeID
}

// Receive consumes the topic until ctx is done or the group is closed
func (t *Transport) Receive(ctx context.Context, handler transport.Handler) error {
	if t.group == nil {
		return errors.New("consumer group not configured")
	}

	go func() {
		for err := range t.group.Errors() {
			t.logger.Error("consumer group error", zap.Error(err))
		}
	}()

	h := &groupHandler{nodeID: t.nodeID, handler: handler, logger: t.logger}
	for {
		if err := t.group.Consume(ctx, []string{t.topic}, h); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			t.logger.Error("error from consumer", zap.Error(err))
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close shuts down the consumer group and the producer
func (t *Transport) Close() error {
	var errs []error
	if t.group != nil {
		errs = append(errs, t.group.Close())
	}
	errs = append(errs, t.producer.Close())
	return errors.Join(errs...)
}

// groupHandler implements sarama.ConsumerGroupHandler
type groupHandler struct {
	nodeID  string
	handler transport.Handler
	logger  *zap.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim hands this node's envelopes to the handler in partition order
func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-session.Context().Done():
			return nil

		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			var env models.Envelope
			if err := json.Unmarshal(message.Value, &env); err != nil {
				h.logger.Warn("failed to unmarshal envelope",
					zap.Error(err),
					zap.Int64("offset", message.Offset),
					zap.Int32("partition", message.Partition),
				)
				session.MarkMessage(message, "")
				continue
			}

			if addressedTo(&env, h.nodeID) {
				h.handler(session.Context(), &env)
			}
			session.MarkMessage(message, "")
		}
	}
}
