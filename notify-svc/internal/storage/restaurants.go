package storage

import (
	"context"
	"database/sql"
	"errors"

	"qrmenu-platform/notify-svc/internal/service"
)

// RestaurantDirectory reads restaurant ownership from the menu database.
type RestaurantDirectory struct {
	DB *sql.DB
}

func NewRestaurantDirectory(db *sql.DB) *RestaurantDirectory {
	return &RestaurantDirectory{DB: db}
}

func (d *RestaurantDirectory) SlugOwner(ctx context.Context, slug string) (string, bool, error) {
	var id string
	err := d.DB.QueryRowContext(ctx, "SELECT id FROM restaurants WHERE slug = $1", slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

var _ service.SlugOwners = (*RestaurantDirectory)(nil)
