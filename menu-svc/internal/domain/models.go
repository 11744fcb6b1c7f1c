package domain

import (
	"encoding/json"
	"time"
)

type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	LogoURL     *string    `json:"logo_url"`
	QRURL       *string    `json:"qr_url"`
	QRETag      *string    `json:"qr_etag,omitempty"`
	QRUpdatedAt *time.Time `json:"qr_updated_at,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Available    bool      `json:"available"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type RestaurantUser struct {
	Email        string    `json:"email"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type PublicMenu struct {
	Restaurant Restaurant `json:"restaurant"`
	Items      []MenuItem `json:"items"`
}

// QRState is what gets persisted on the restaurant row after an upload.
type QRState struct {
	URL       string
	ETag      string
	UpdatedAt time.Time
}

type QRPublication struct {
	URL         string     `json:"qr_url"`
	ETag        string     `json:"qr_etag,omitempty"`
	UpdatedAt   *time.Time `json:"qr_updated_at,omitempty"`
	Regenerated bool       `json:"regenerated"`
}

type PublishRequest struct {
	RestaurantID string
	// Slug, when set, must match the stored slug of the restaurant.
	Slug      string
	TargetURL string
	Force     bool
	// Image holds pre-rendered PNG bytes; when nil the server renders the code.
	Image []byte
}

type CreateRestaurantInput struct {
	Name       string `json:"name" validate:"required,min=1,max=120"`
	Slug       string `json:"slug" validate:"omitempty,max=120"`
	LogoBase64 string `json:"logo_base64"`
}

type CreateMenuItemInput struct {
	RestaurantID string   `json:"-" validate:"required,uuid"`
	Name         string   `json:"name" validate:"required,max=200"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Description  *string  `json:"description"`
	Category     string   `json:"category"`
	Available    *bool    `json:"available"`
	ImageBase64  string   `json:"image_base64"`
}

type CreateLoginInput struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
	UserID  string `json:"user_id"`
}

type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"required,min=10"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

const (
	EventRestaurantCreated = "restaurant_created"
	EventRestaurantDeleted = "restaurant_deleted"
	EventQRPublished       = "qr_published"
	EventContactSubmitted  = "contact_submitted"
)

type Event struct {
	Type         string          `json:"type"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
	Slug         string          `json:"slug,omitempty"`
	Paths        []string        `json:"paths,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

const DefaultCategory = "Main Course"

var MenuCategories = []string{
	"Starters",
	"Appetizers",
	"Soups & Salads",
	"Main Course",
	"Desserts",
	"Beverages",
	"Sides",
	"Specials",
}

func IsMenuCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

func MenuURL(baseURL, slug string) string {
	return baseURL + "/menu/" + slug
}
