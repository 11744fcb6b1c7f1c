package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"qrmenu-platform/assets"
	"qrmenu-platform/notify-svc/internal/domain"
)

// AssetCleaner removes the stored files of a deleted restaurant.
type AssetCleaner struct {
	Assets AssetRemover
	Owners SlugOwners
}

func NewAssetCleaner(store AssetRemover, owners SlugOwners) *AssetCleaner {
	return &AssetCleaner{Assets: store, Owners: owners}
}

func (c *AssetCleaner) Handle(ctx context.Context, event domain.Event) error {
	paths := CleanupPaths(event)
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s event without slug or paths", ErrMalformedEvent, event.Type)
	}

	reused, err := c.slugReused(ctx, event)
	if err != nil {
		return fmt.Errorf("%w: look up owner of %s: %v", ErrDelivery, event.Slug, err)
	}
	if reused {
		kept := len(paths)
		paths = withoutSlugAssets(paths, event.Slug)
		log.Printf("[notify-svc] slug %s belongs to a new restaurant, keeping %d of its assets", event.Slug, kept-len(paths))
		if len(paths) == 0 {
			return nil
		}
	}

	if err := c.Assets.Remove(ctx, paths...); err != nil {
		return fmt.Errorf("%w: remove assets of %s: %v", ErrDelivery, event.Slug, err)
	}
	log.Printf("[notify-svc] removed %d assets of restaurant %s", len(paths), event.Slug)
	return nil
}

// slugReused reports whether a restaurant other than the deleted one now
// owns the event's slug.
func (c *AssetCleaner) slugReused(ctx context.Context, event domain.Event) (bool, error) {
	if c.Owners == nil || event.Slug == "" {
		return false, nil
	}
	ownerID, found, err := c.Owners.SlugOwner(ctx, event.Slug)
	if err != nil {
		return false, err
	}
	return found && ownerID != event.RestaurantID, nil
}

// withoutSlugAssets drops the QR and logo objects stored under slug.
func withoutSlugAssets(paths []string, slug string) []string {
	qrDir := strings.TrimSuffix(assets.QRPath(slug), "qr.png")
	logoDir := strings.TrimSuffix(assets.LogoPath(slug), "logo.png")
	var out []string
	for _, p := range paths {
		if strings.HasPrefix(p, qrDir) || strings.HasPrefix(p, logoDir) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CleanupPaths is the event's path list plus the slug-derived QR and logo
// paths, without duplicates.
func CleanupPaths(event domain.Event) []string {
	seen := map[string]bool{}
	var paths []string
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, p := range event.Paths {
		add(p)
	}
	if event.Slug != "" {
		add(assets.QRPath(event.Slug))
		add(assets.LogoPath(event.Slug))
	}
	return paths
}
