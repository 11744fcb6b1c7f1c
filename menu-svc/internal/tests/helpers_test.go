package tests

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"qrmenu-platform/menu-svc/internal/domain"
)

const (
	restaurantID = "6f1c2f7e-3b0a-4a55-9a2e-0d6f1f1b2c3d"
	itemID       = "0a9d1c44-8d7e-4c1a-b1f0-9a7e5b3c2d10"
	qrURL        = "https://proj.supabase.co/storage/v1/object/public/qrmenu/qr/spice-villa/qr.png"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:     restaurantID,
		Name:   "Spice Villa",
		Slug:   "spice-villa",
		Active: true,
	}
}

func publishedRestaurant() *domain.Restaurant {
	rest := newRestaurant()
	updated := fixedNow.Add(-24 * time.Hour)
	rest.QRURL = strPtr(qrURL)
	rest.QRETag = strPtr("0011223344556677")
	rest.QRUpdatedAt = &updated
	return rest
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
