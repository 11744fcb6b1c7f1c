package service

import (
	"context"
	"errors"
	"log"
	"time"

	"qrmenu-platform/assets"
	"qrmenu-platform/menu-svc/internal/domain"
)

const (
	defaultMarkAttempts = 3
	defaultMarkBackoff  = 100 * time.Millisecond
)

// AssetMarkLoader fetches the restaurant logo from the asset store and falls
// back to the platform brand mark. It never fails: a nil result means the QR
// is rendered without a mark.
type AssetMarkLoader struct {
	assets   AssetStore
	fallback []byte
	attempts int
	backoff  time.Duration
}

func NewAssetMarkLoader(store AssetStore, fallback []byte) *AssetMarkLoader {
	return &AssetMarkLoader{
		assets:   store,
		fallback: fallback,
		attempts: defaultMarkAttempts,
		backoff:  defaultMarkBackoff,
	}
}

func (l *AssetMarkLoader) WithRetry(attempts int, backoff time.Duration) *AssetMarkLoader {
	if attempts < 1 {
		attempts = 1
	}
	l.attempts = attempts
	l.backoff = backoff
	return l
}

func (l *AssetMarkLoader) Load(ctx context.Context, rest *domain.Restaurant) []byte {
	if rest != nil && rest.LogoURL != nil && *rest.LogoURL != "" && l.assets != nil {
		objectPath, ok := l.assets.PathFromURL(*rest.LogoURL)
		if !ok {
			objectPath = assets.LogoPath(rest.Slug)
		}
		if data := l.download(ctx, objectPath); data != nil {
			return data
		}
	}
	return l.fallback
}

func (l *AssetMarkLoader) download(ctx context.Context, objectPath string) []byte {
	for attempt := 1; attempt <= l.attempts; attempt++ {
		data, err := l.assets.Download(ctx, objectPath)
		if err == nil && len(data) > 0 {
			return data
		}
		if err == nil {
			err = errors.New("empty object")
		}
		if errors.Is(err, assets.ErrNotFound) {
			log.Printf("WARNING: logo %s not found, using fallback mark", objectPath)
			return nil
		}
		log.Printf("WARNING: logo load attempt %d/%d for %s failed: %v", attempt, l.attempts, objectPath, err)

		if attempt < l.attempts {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(l.backoff):
			}
		}
	}
	return nil
}
