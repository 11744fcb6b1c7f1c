package storage

import (
	"context"
	"encoding/json"
	"time"

	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish keys events by restaurant so that one restaurant's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := event.RestaurantID
	if key == "" {
		key = event.Type
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

var (
	_ service.EventPublisher = (*KafkaPublisher)(nil)
	_ MessageWriter          = (*kafka.Writer)(nil)
)
