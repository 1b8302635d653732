package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"devconnect/internal/config"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TopicProfileEvents = "profile.events"
	TopicPostEvents    = "post.events"
	TopicUserEvents    = "user.events"
)

const (
	ProfileEventTypeUpserted         = "profile.upserted"
	ProfileEventTypeExperienceAdded  = "profile.experience.added"
	ProfileEventTypeExperienceRemoved = "profile.experience.removed"
	ProfileEventTypeEducationAdded   = "profile.education.added"
	ProfileEventTypeEducationRemoved = "profile.education.removed"

	PostEventTypeCreated = "post.created"
	PostEventTypeDeleted = "post.deleted"

	UserEventTypeRegistered = "user.registered"
	UserEventTypeDeleted    = "user.deleted"
)

type ProfileEventPayload struct {
	EventType  string    `json:"event_type"`
	OwnerID    uuid.UUID `json:"owner_id"`
	RecordID   uuid.UUID `json:"record_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PostEventPayload struct {
	EventType  string    `json:"event_type"`
	PostID     uuid.UUID `json:"post_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type UserEventPayload struct {
	EventType  string    `json:"event_type"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
	PostEventsWriter    *kafka.Writer
	UserEventsWriter    *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	postWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPostEvents,
		Balancer: &kafka.LeastBytes{},
	}

	userWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicUserEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
		PostEventsWriter:    postWriter,
		UserEventsWriter:    userWriter,
	}, nil
}

// Publish methods are nil-receiver safe so usecases under test can run
// without a broker.

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	if c == nil || c.ProfileEventsWriter == nil {
		return nil
	}
	return publish(ctx, c.ProfileEventsWriter, payload.OwnerID, payload)
}

func (c *KafkaProducerClient) PublishPostEvent(ctx context.Context, payload PostEventPayload) error {
	if c == nil || c.PostEventsWriter == nil {
		return nil
	}
	return publish(ctx, c.PostEventsWriter, payload.OwnerID, payload)
}

func (c *KafkaProducerClient) PublishUserEvent(ctx context.Context, payload UserEventPayload) error {
	if c == nil || c.UserEventsWriter == nil {
		return nil
	}
	return publish(ctx, c.UserEventsWriter, payload.UserID, payload)
}

func publish(ctx context.Context, w *kafka.Writer, key uuid.UUID, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c == nil {
		return
	}
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	if c.PostEventsWriter != nil {
		c.PostEventsWriter.Close()
	}
	if c.UserEventsWriter != nil {
		c.UserEventsWriter.Close()
	}
}
