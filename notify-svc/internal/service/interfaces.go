package service

import (
	"context"

	"qrmenu-platform/notify-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

type AssetRemover interface {
	Remove(ctx context.Context, paths ...string) error
}

// SlugOwners reports which restaurant currently holds a slug.
type SlugOwners interface {
	SlugOwner(ctx context.Context, slug string) (id string, found bool, err error)
}

// Deduper reports whether a message key is seen for the first time.
type Deduper interface {
	FirstSeen(ctx context.Context, key string) (bool, error)
}

type EventHandler interface {
	Handle(ctx context.Context, event domain.Event) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.Event) error
}

var (
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ EventHandler      = (*AssetCleaner)(nil)
	_ EventHandler      = (*ContactNotifier)(nil)
)
