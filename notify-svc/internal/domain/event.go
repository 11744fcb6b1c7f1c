package domain

import (
	"encoding/json"
	"time"
)

const (
	EventRestaurantCreated = "restaurant_created"
	EventRestaurantDeleted = "restaurant_deleted"
	EventQRPublished       = "qr_published"
	EventContactSubmitted  = "contact_submitted"
)

// Event mirrors the messages menu-svc writes to the restaurant events topic.
type Event struct {
	Type         string          `json:"type"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
	Slug         string          `json:"slug,omitempty"`
	Paths        []string        `json:"paths,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Email struct {
	To       string
	ToName   string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}
