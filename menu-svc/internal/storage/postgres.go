package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = "id, name, slug, logo_url, qr_url, qr_etag, qr_updated_at, active, created_at"

const menuItemColumns = "id, restaurant_id, name, description, price, category, available, image_url, created_at"

type scanner interface {
	Scan(dest ...interface{}) error
}

// mapError translates driver errors into service sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return service.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", service.ErrConflict, pqErr.Detail)
		case "23503":
			return fmt.Errorf("%w: %s", service.ErrNotFound, pqErr.Detail)
		case "22P02":
			// malformed uuid in a lookup can never match a row
			return service.ErrNotFound
		}
	}
	return err
}

func scanRestaurant(row scanner) (*domain.Restaurant, error) {
	var (
		rest        domain.Restaurant
		logoURL     sql.NullString
		qrURL       sql.NullString
		qrETag      sql.NullString
		qrUpdatedAt sql.NullTime
	)
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Slug, &logoURL, &qrURL, &qrETag, &qrUpdatedAt, &rest.Active, &rest.CreatedAt); err != nil {
		return nil, err
	}
	rest.LogoURL = nullString(logoURL)
	rest.QRURL = nullString(qrURL)
	rest.QRETag = nullString(qrETag)
	if qrUpdatedAt.Valid {
		t := qrUpdatedAt.Time
		rest.QRUpdatedAt = &t
	}
	return &rest, nil
}

func scanMenuItem(row scanner) (*domain.MenuItem, error) {
	var (
		item        domain.MenuItem
		description sql.NullString
		imageURL    sql.NullString
	)
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &description, &item.Price, &item.Category, &item.Available, &imageURL, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Description = nullString(description)
	item.ImageURL = nullString(imageURL)
	return &item, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, slug, logo_url, active) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		rest.Name, rest.Slug, rest.LogoURL, rest.Active,
	).Scan(&rest.ID, &rest.CreatedAt)
	return mapError(err)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id))
	if err != nil {
		return nil, mapError(err)
	}
	return rest, nil
}

func (r *PostgresRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE slug = $1", slug))
	if err != nil {
		return nil, mapError(err)
	}
	return rest, nil
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, mapError(err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetRestaurantActive(ctx context.Context, id string, active bool) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "UPDATE restaurants SET active = $2 WHERE id = $1", id, active)
	if err != nil {
		return 0, mapError(err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateRestaurantLogo(ctx context.Context, id, logoURL string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE restaurants SET logo_url = $2 WHERE id = $1", id, logoURL)
	return mapError(err)
}

func (r *PostgresRepository) SaveQRState(ctx context.Context, id string, state domain.QRState, force bool) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE restaurants
		SET qr_url = $2, qr_etag = $3, qr_updated_at = $4
		WHERE id = $1 AND (qr_url IS NULL OR qr_url = '' OR $5)`,
		id, state.URL, state.ETag, state.UpdatedAt, force)
	if err != nil {
		return false, mapError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_id, name, description, price, category, available, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Category, item.Available, item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
	return mapError(err)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID string, onlyAvailable bool) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND ($2 = FALSE OR available)
		ORDER BY category, name`, restaurantID, onlyAvailable)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id))
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (r *PostgresRepository) UpdateMenuItemImage(ctx context.Context, id, imageURL string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET image_url = $2 WHERE id = $1", id, imageURL)
	return mapError(err)
}

func (r *PostgresRepository) SetMenuItemAvailability(ctx context.Context, id string, available bool) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx,
		"UPDATE menu_items SET available = $2 WHERE id = $1 RETURNING "+menuItemColumns, id, available))
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, mapError(err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateRestaurantUser(ctx context.Context, user *domain.RestaurantUser) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurant_users (email, restaurant_id) VALUES ($1, $2) RETURNING created_at",
		user.Email, user.RestaurantID,
	).Scan(&user.CreatedAt)
	return mapError(err)
}

func (r *PostgresRepository) RestaurantUserExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM restaurant_users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EnsureSchema creates the tables on a fresh database and adds columns that
// older deployments are missing. gen_random_uuid needs PostgreSQL 13+.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			logo_url TEXT,
			qr_url TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS qr_etag TEXT",
		"ALTER TABLE restaurants ADD COLUMN IF NOT EXISTS qr_updated_at TIMESTAMPTZ",
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL DEFAULT 'Main Course',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS menu_items_restaurant_id_idx ON menu_items (restaurant_id)",
		`CREATE TABLE IF NOT EXISTS restaurant_users (
			email TEXT PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

var (
	_ service.RestaurantRepository     = (*PostgresRepository)(nil)
	_ service.MenuItemRepository       = (*PostgresRepository)(nil)
	_ service.RestaurantUserRepository = (*PostgresRepository)(nil)
)
