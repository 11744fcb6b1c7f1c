package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"qrmenu-platform/notify-svc/internal/domain"
)

type Consumer struct {
	Reader   MessageReader
	Handlers map[string]EventHandler
	// Dedupe is optional; without it redelivered messages are handled again.
	Dedupe       Deduper
	RetryBackoff time.Duration
}

func NewConsumer(reader MessageReader, dedupe Deduper) *Consumer {
	return &Consumer{
		Reader:       reader,
		Handlers:     map[string]EventHandler{},
		Dedupe:       dedupe,
		RetryBackoff: time.Second,
	}
}

func (c *Consumer) On(eventType string, handler EventHandler) *Consumer {
	c.Handlers[eventType] = handler
	return c
}

// Start reads until ctx is cancelled. Read and handler errors are logged and
// the loop moves on to the next message.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[notify-svc] consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[notify-svc] consumer stopped")
				return
			}
			log.Printf("ERROR: reading message: %v", err)
			select {
			case <-ctx.Done():
				log.Println("[notify-svc] consumer stopped")
				return
			case <-time.After(c.RetryBackoff):
			}
			continue
		}

		if c.Dedupe != nil {
			first, err := c.Dedupe.FirstSeen(ctx, MessageKey(message.Value))
			if err != nil {
				log.Printf("WARNING: dedupe lookup failed, handling anyway: %v", err)
			} else if !first {
				log.Printf("[notify-svc] skipping redelivered message at offset %d", message.Offset)
				continue
			}
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("ERROR: unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			log.Printf("ERROR: processing %s event: %v", event.Type, err)
		}
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) error {
	if event.Type == "" {
		return fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}
	handler, ok := c.Handlers[event.Type]
	if !ok {
		return nil
	}
	if err := handler.Handle(ctx, event); err != nil {
		return err
	}
	log.Printf("[notify-svc] handled %s for restaurant %q", event.Type, event.RestaurantID)
	return nil
}

// MessageKey identifies a message by its content. Events carry a timestamp,
// so two distinct events never share a key.
func MessageKey(value []byte) string {
	sum := sha256.Sum256(value)
	return hex.EncodeToString(sum[:16])
}
