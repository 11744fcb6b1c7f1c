package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"time"

	"qrmenu-platform/assets"
	"qrmenu-platform/menu-svc/internal/domain"
)

// QRPublisher renders (or accepts) a restaurant's QR image, stores it at the
// deterministic path for the slug and records the public URL on the restaurant.
type QRPublisher struct {
	restaurants RestaurantRepository
	assets      AssetStore
	renderer    QRRenderer
	marks       MarkLoader
	cache       MenuCache
	events      EventPublisher
	baseURL     string
	now         func() time.Time
}

func NewQRPublisher(restaurants RestaurantRepository, store AssetStore, renderer QRRenderer, marks MarkLoader, cache MenuCache, events EventPublisher, baseURL string) *QRPublisher {
	return &QRPublisher{
		restaurants: restaurants,
		assets:      store,
		renderer:    renderer,
		marks:       marks,
		cache:       cache,
		events:      events,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

func (p *QRPublisher) WithClock(now func() time.Time) *QRPublisher {
	p.now = now
	return p
}

func (p *QRPublisher) Publish(ctx context.Context, req domain.PublishRequest) (*domain.QRPublication, error) {
	if req.RestaurantID == "" {
		return nil, fmt.Errorf("%w: restaurant_id is required", ErrValidation)
	}

	rest, err := p.restaurants.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("restaurant %s: %w", req.RestaurantID, ErrNotFound)
		}
		return nil, fmt.Errorf("load restaurant %s: %w", req.RestaurantID, err)
	}
	if req.Slug != "" && req.Slug != rest.Slug {
		return nil, fmt.Errorf("%w: slug %q does not belong to restaurant %s", ErrValidation, req.Slug, rest.ID)
	}

	if !req.Force && rest.QRURL != nil && *rest.QRURL != "" {
		return publicationOf(rest, false), nil
	}

	image := req.Image
	if image != nil {
		if err := checkPNG(image); err != nil {
			return nil, err
		}
	} else {
		target := req.TargetURL
		if target == "" {
			target = domain.MenuURL(p.baseURL, rest.Slug)
		}
		var mark []byte
		if p.marks != nil {
			mark = p.marks.Load(ctx, rest)
		}
		image, err = p.renderer.Render(target, mark)
		if err != nil {
			if errors.Is(err, ErrRenderFailed) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
	}

	objectPath := assets.QRPath(rest.Slug)
	obj, err := p.assets.Upload(ctx, objectPath, image, assets.UploadOptions{
		ContentType:  assets.ContentTypePNG,
		CacheControl: assets.ImmutableCacheControl,
		Upsert:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	state := domain.QRState{
		URL:       obj.URL,
		ETag:      obj.ETag,
		UpdatedAt: p.now().UTC(),
	}
	if state.URL == "" {
		state.URL = p.assets.PublicURL(objectPath)
	}
	if state.ETag == "" {
		state.ETag = assets.ETag(image)
	}

	applied, err := p.restaurants.SaveQRState(ctx, rest.ID, state, req.Force)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	if !applied {
		// Another publisher stored a URL between our read and write; its
		// object lives at the same path, so report what is stored.
		current, err := p.restaurants.GetRestaurant(ctx, rest.ID)
		if err != nil || current.QRURL == nil {
			return nil, fmt.Errorf("%w: qr reference for restaurant %s was not stored", ErrPersistFailed, rest.ID)
		}
		log.Printf("[menu-svc] QR for restaurant %s was published concurrently, keeping %s", rest.ID, *current.QRURL)
		return publicationOf(current, false), nil
	}

	invalidate(ctx, p.cache, rest.Slug)
	log.Printf("[menu-svc] published QR for restaurant %s at %s (force=%t)", rest.ID, state.URL, req.Force)
	emit(ctx, p.events, domain.Event{
		Type:         domain.EventQRPublished,
		RestaurantID: rest.ID,
		Slug:         rest.Slug,
		Paths:        []string{objectPath},
		Timestamp:    state.UpdatedAt,
	})

	updatedAt := state.UpdatedAt
	return &domain.QRPublication{
		URL:         state.URL,
		ETag:        state.ETag,
		UpdatedAt:   &updatedAt,
		Regenerated: true,
	}, nil
}

func checkPNG(image []byte) error {
	if len(image) == 0 {
		return fmt.Errorf("%w: qr image is empty", ErrValidation)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(image)); err != nil {
		return fmt.Errorf("%w: qr image must be a PNG", ErrValidation)
	}
	return nil
}

func publicationOf(rest *domain.Restaurant, regenerated bool) *domain.QRPublication {
	pub := &domain.QRPublication{Regenerated: regenerated, UpdatedAt: rest.QRUpdatedAt}
	if rest.QRURL != nil {
		pub.URL = *rest.QRURL
	}
	if rest.QRETag != nil {
		pub.ETag = *rest.QRETag
	}
	return pub
}
