// Package assets stores public files (QR codes, logos, menu item images) at
// stable, human-chosen paths. Uploading to an existing path replaces the object
// in place and the public URL of a path never changes.
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	ErrNotFound    = errors.New("asset not found")
	ErrExists      = errors.New("asset already exists")
	ErrInvalidPath = errors.New("invalid asset path")
)

const (
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"

	// ImmutableCacheControl is used for objects that only change on explicit regeneration.
	ImmutableCacheControl = "public, max-age=31536000, immutable"
	DefaultCacheControl   = "public, max-age=3600"
)

type UploadOptions struct {
	ContentType  string
	CacheControl string
	Upsert       bool
}

type Object struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	ETag string `json:"etag"`
}

type Store interface {
	Upload(ctx context.Context, path string, data []byte, opts UploadOptions) (*Object, error)
	PublicURL(path string) string
	Download(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, paths ...string) error
	PathFromURL(publicURL string) (string, bool)
}

func QRPath(slug string) string {
	return "qr/" + slug + "/qr.png"
}

func LogoPath(slug string) string {
	return "logos/" + slug + "/logo.png"
}

func MenuItemImagePath(slug, itemID string) string {
	return "menu_items/" + slug + "/" + itemID + ".jpg"
}

// ETag is a short content hash; identical bytes always produce the same tag.
func ETag(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
