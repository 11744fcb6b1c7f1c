package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"qrmenu-platform/assets"
	"qrmenu-platform/menu-svc/internal/domain"
)

type RestaurantService struct {
	repo   RestaurantRepository
	items  MenuItemRepository
	assets AssetStore
	cache  MenuCache
	events EventPublisher
}

func NewRestaurantService(repo RestaurantRepository, items MenuItemRepository, store AssetStore, cache MenuCache, events EventPublisher) *RestaurantService {
	return &RestaurantService{
		repo:   repo,
		items:  items,
		assets: store,
		cache:  cache,
		events: events,
	}
}

func (s *RestaurantService) Create(ctx context.Context, input domain.CreateRestaurantInput) (*domain.Restaurant, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(input.Name, input.Slug)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetRestaurantBySlug(ctx, slug); err == nil {
		return nil, fmt.Errorf("%w: slug %q", ErrConflict, slug)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check slug %q: %w", slug, err)
	}

	var logo []byte
	if input.LogoBase64 != "" {
		logo, err = decodeBase64Image(input.LogoBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: logo_base64: %v", ErrValidation, err)
		}
	}

	rest := &domain.Restaurant{Name: input.Name, Slug: slug, Active: true}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	// The logo path is derived from the slug, so it is only written once the
	// row holds the slug.
	if input.LogoBase64 != "" {
		if err := s.attachLogo(ctx, rest, logo); err != nil {
			s.rollbackCreate(ctx, rest)
			return nil, err
		}
	}

	log.Printf("[menu-svc] created restaurant %s (%s)", rest.ID, rest.Slug)
	emit(ctx, s.events, domain.Event{
		Type:         domain.EventRestaurantCreated,
		RestaurantID: rest.ID,
		Slug:         rest.Slug,
	})
	return rest, nil
}

func (s *RestaurantService) attachLogo(ctx context.Context, rest *domain.Restaurant, logo []byte) error {
	objectPath := assets.LogoPath(rest.Slug)
	obj, err := s.assets.Upload(ctx, objectPath, logo, assets.UploadOptions{
		ContentType:  assets.ContentTypePNG,
		CacheControl: assets.DefaultCacheControl,
		Upsert:       true,
	})
	if err != nil {
		return fmt.Errorf("%w: logo: %v", ErrUploadFailed, err)
	}
	if err := s.repo.UpdateRestaurantLogo(ctx, rest.ID, obj.URL); err != nil {
		if rmErr := s.assets.Remove(ctx, objectPath); rmErr != nil {
			log.Printf("WARNING: could not remove logo %s: %v", objectPath, rmErr)
		}
		return fmt.Errorf("%w: logo url: %v", ErrPersistFailed, err)
	}
	logoURL := obj.URL
	rest.LogoURL = &logoURL
	return nil
}

// rollbackCreate removes a row whose logo could not be stored.
func (s *RestaurantService) rollbackCreate(ctx context.Context, rest *domain.Restaurant) {
	if _, err := s.repo.DeleteRestaurant(ctx, rest.ID); err != nil {
		log.Printf("ERROR: could not roll back restaurant %s (%s): %v", rest.ID, rest.Slug, err)
	}
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	list, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	if list == nil {
		list = []domain.Restaurant{}
	}
	return list, nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: restaurant id is required", ErrValidation)
	}
	return s.repo.GetRestaurant(ctx, id)
}

// Delete removes the restaurant row; menu items and logins cascade in the
// database. Stored objects are cleaned up by the consumer of the deletion event.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	rest, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	paths := []string{assets.QRPath(rest.Slug), assets.LogoPath(rest.Slug)}
	items, err := s.items.ListMenuItems(ctx, rest.ID, false)
	if err != nil {
		log.Printf("WARNING: could not list menu items of %s before delete: %v", rest.ID, err)
	}
	for _, item := range items {
		if item.ImageURL == nil {
			continue
		}
		if objectPath, ok := s.assets.PathFromURL(*item.ImageURL); ok {
			paths = append(paths, objectPath)
		}
	}

	rows, err := s.repo.DeleteRestaurant(ctx, rest.ID)
	if err != nil {
		return fmt.Errorf("delete restaurant %s: %w", rest.ID, err)
	}
	if rows == 0 {
		return fmt.Errorf("restaurant %s: %w", rest.ID, ErrNotFound)
	}

	invalidate(ctx, s.cache, rest.Slug)
	log.Printf("[menu-svc] deleted restaurant %s (%s)", rest.ID, rest.Slug)
	emit(ctx, s.events, domain.Event{
		Type:         domain.EventRestaurantDeleted,
		RestaurantID: rest.ID,
		Slug:         rest.Slug,
		Paths:        paths,
	})
	return nil
}

func (s *RestaurantService) SetActive(ctx context.Context, id string, active bool) error {
	rest, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	rows, err := s.repo.SetRestaurantActive(ctx, rest.ID, active)
	if err != nil {
		return fmt.Errorf("update status of %s: %w", rest.ID, err)
	}
	if rows == 0 {
		return fmt.Errorf("restaurant %s: %w", rest.ID, ErrNotFound)
	}
	invalidate(ctx, s.cache, rest.Slug)
	return nil
}

func invalidate(ctx context.Context, cache MenuCache, slug string) {
	if cache == nil || slug == "" {
		return
	}
	if err := cache.Invalidate(ctx, slug); err != nil {
		log.Printf("WARNING: failed to invalidate menu cache for %s: %v", slug, err)
	}
}

func emit(ctx context.Context, events EventPublisher, event domain.Event) {
	if events == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := events.Publish(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for restaurant %s: %v", event.Type, event.RestaurantID, err)
	}
}
