package service

import (
	"context"

	"qrmenu-platform/assets"
	"qrmenu-platform/menu-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) (int64, error)
	SetRestaurantActive(ctx context.Context, id string, active bool) (int64, error)
	UpdateRestaurantLogo(ctx context.Context, id, logoURL string) error
	// SaveQRState writes the QR reference only while qr_url is NULL or empty,
	// or unconditionally when force is set. It reports whether a row changed.
	SaveQRState(ctx context.Context, id string, state domain.QRState, force bool) (bool, error)
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID string, onlyAvailable bool) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	UpdateMenuItemImage(ctx context.Context, id, imageURL string) error
	SetMenuItemAvailability(ctx context.Context, id string, available bool) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
}

type RestaurantUserRepository interface {
	CreateRestaurantUser(ctx context.Context, user *domain.RestaurantUser) error
	RestaurantUserExists(ctx context.Context, email string) (bool, error)
}

type AssetStore interface {
	Upload(ctx context.Context, path string, data []byte, opts assets.UploadOptions) (*assets.Object, error)
	PublicURL(path string) string
	Download(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, paths ...string) error
	PathFromURL(publicURL string) (string, bool)
}

type MenuCache interface {
	// GetMenu returns nil without error on a cache miss.
	GetMenu(ctx context.Context, slug string) (*domain.PublicMenu, error)
	SetMenu(ctx context.Context, slug string, menu *domain.PublicMenu) error
	Invalidate(ctx context.Context, slug string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type QRRenderer interface {
	Render(value string, mark []byte) ([]byte, error)
}

type MarkLoader interface {
	Load(ctx context.Context, rest *domain.Restaurant) []byte
}

type AuthProvider interface {
	CreateUser(ctx context.Context, email, password string) (*domain.AuthUser, error)
	DeleteUser(ctx context.Context, id string) error
	FindUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
	UpdatePassword(ctx context.Context, id, password string) (*domain.AuthUser, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, input domain.CreateRestaurantInput) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type QRServiceInterface interface {
	Publish(ctx context.Context, req domain.PublishRequest) (*domain.QRPublication, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	Create(ctx context.Context, input domain.CreateMenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, itemID string) error
	SetAvailability(ctx context.Context, itemID string, available bool) (*domain.MenuItem, error)
	PublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error)
}

type AccountServiceInterface interface {
	CreateLogin(ctx context.Context, input domain.CreateLoginInput) (*domain.LoginResult, error)
	ResetPassword(ctx context.Context, email, newPassword string) (*domain.AuthUser, error)
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ QRServiceInterface         = (*QRPublisher)(nil)
	_ MenuServiceInterface       = (*MenuService)(nil)
	_ AccountServiceInterface    = (*AccountService)(nil)
	_ ContactServiceInterface    = (*ContactService)(nil)
	_ AssetStore                 = (assets.Store)(nil)
	_ QRRenderer                 = DefaultQRRenderer{}
	_ MarkLoader                 = (*AssetMarkLoader)(nil)
)
