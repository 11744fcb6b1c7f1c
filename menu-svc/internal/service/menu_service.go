package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"qrmenu-platform/assets"
	"qrmenu-platform/menu-svc/internal/domain"
)

type MenuService struct {
	items       MenuItemRepository
	restaurants RestaurantRepository
	assets      AssetStore
	cache       MenuCache
}

func NewMenuService(items MenuItemRepository, restaurants RestaurantRepository, store AssetStore, cache MenuCache) *MenuService {
	return &MenuService{
		items:       items,
		restaurants: restaurants,
		assets:      store,
		cache:       cache,
	}
}

func (s *MenuService) List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if restaurantID == "" {
		return nil, fmt.Errorf("%w: restaurant id is required", ErrValidation)
	}
	items, err := s.items.ListMenuItems(ctx, restaurantID, false)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, input domain.CreateMenuItemInput) (*domain.MenuItem, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}
	if !domain.IsMenuCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}

	var image []byte
	if input.ImageBase64 != "" {
		data, err := decodeBase64Image(input.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: image_base64: %v", ErrValidation, err)
		}
		image = data
	}

	rest, err := s.restaurants.GetRestaurant(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid restaurant_id", ErrValidation)
		}
		return nil, fmt.Errorf("load restaurant %s: %w", input.RestaurantID, err)
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}
	item := &domain.MenuItem{
		RestaurantID: rest.ID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        *input.Price,
		Category:     category,
		Available:    available,
	}
	if err := s.items.CreateMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	if image != nil {
		obj, err := s.assets.Upload(ctx, assets.MenuItemImagePath(rest.Slug, item.ID), image, assets.UploadOptions{
			ContentType:  assets.ContentTypeJPEG,
			CacheControl: assets.DefaultCacheControl,
			Upsert:       true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: image of item %s: %v", ErrUploadFailed, item.ID, err)
		}
		if err := s.items.UpdateMenuItemImage(ctx, item.ID, obj.URL); err != nil {
			return nil, fmt.Errorf("%w: image url of item %s: %v", ErrPersistFailed, item.ID, err)
		}
		imageURL := obj.URL
		item.ImageURL = &imageURL
	}

	invalidate(ctx, s.cache, rest.Slug)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, itemID string) error {
	item, err := s.items.GetMenuItem(ctx, itemID)
	if err != nil {
		return err
	}

	if item.ImageURL != nil && *item.ImageURL != "" {
		if objectPath, ok := s.assets.PathFromURL(*item.ImageURL); ok {
			if err := s.assets.Remove(ctx, objectPath); err != nil {
				log.Printf("WARNING: failed to remove image %s of item %s: %v", objectPath, item.ID, err)
			}
		}
	}

	rows, err := s.items.DeleteMenuItem(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("delete menu item %s: %w", item.ID, err)
	}
	if rows == 0 {
		return fmt.Errorf("menu item %s: %w", item.ID, ErrNotFound)
	}

	s.invalidateFor(ctx, item.RestaurantID)
	return nil
}

func (s *MenuService) SetAvailability(ctx context.Context, itemID string, available bool) (*domain.MenuItem, error) {
	item, err := s.items.SetMenuItemAvailability(ctx, itemID, available)
	if err != nil {
		return nil, err
	}
	s.invalidateFor(ctx, item.RestaurantID)
	return item, nil
}

// PublicMenu is what a diner sees after scanning the code: only active
// restaurants and only available items.
func (s *MenuService) PublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	if s.cache != nil {
		menu, err := s.cache.GetMenu(ctx, slug)
		if err != nil {
			log.Printf("WARNING: menu cache read for %s failed: %v", slug, err)
		} else if menu != nil {
			return menu, nil
		}
	}

	rest, err := s.restaurants.GetRestaurantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !rest.Active {
		return nil, fmt.Errorf("%s: %w", slug, ErrInactive)
	}

	items, err := s.items.ListMenuItems(ctx, rest.ID, true)
	if err != nil {
		return nil, fmt.Errorf("list menu of %s: %w", slug, err)
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	menu := &domain.PublicMenu{Restaurant: *rest, Items: items}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, slug, menu); err != nil {
			log.Printf("WARNING: menu cache write for %s failed: %v", slug, err)
		}
	}
	return menu, nil
}

func (s *MenuService) invalidateFor(ctx context.Context, restaurantID string) {
	if s.cache == nil {
		return
	}
	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		log.Printf("WARNING: cannot resolve slug of %s for cache invalidation: %v", restaurantID, err)
		return
	}
	invalidate(ctx, s.cache, rest.Slug)
}
