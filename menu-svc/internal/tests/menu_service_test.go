package tests

import (
	"context"
	"encoding/base64"
	"testing"

	"qrmenu-platform/assets"
	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/mocks"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type menuDeps struct {
	items *mocks.MenuItemRepository
	repo  *mocks.RestaurantRepository
	store *mocks.AssetStore
	cache *mocks.MenuCache
}

func newMenuService(t *testing.T) (*service.MenuService, menuDeps) {
	d := menuDeps{
		items: mocks.NewMenuItemRepository(t),
		repo:  mocks.NewRestaurantRepository(t),
		store: mocks.NewAssetStore(t),
		cache: mocks.NewMenuCache(t),
	}
	return service.NewMenuService(d.items, d.repo, d.store, d.cache), d
}

func price(v float64) *float64 { return &v }

func TestMenuService_Create(t *testing.T) {
	photo := []byte("jpeg-bytes")

	tests := []struct {
		name    string
		input   domain.CreateMenuItemInput
		setup   func(d menuDeps)
		check   func(t *testing.T, item *domain.MenuItem)
		wantErr error
	}{
		{
			name:  "defaults category and availability",
			input: domain.CreateMenuItemInput{RestaurantID: restaurantID, Name: "Paneer Tikka", Price: price(249)},
			setup: func(d menuDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(newRestaurant(), nil).Once()
				d.items.On("CreateMenuItem", mock.Anything, mock.MatchedBy(func(i *domain.MenuItem) bool {
					return i.Category == domain.DefaultCategory && i.Available && i.Price == 249
				})).Return(nil).Once()
				d.cache.On("Invalidate", mock.Anything, "spice-villa").Return(nil).Once()
			},
			check: func(t *testing.T, item *domain.MenuItem) {
				assert.Nil(t, item.ImageURL)
			},
		},
		{
			name: "stores image under slug and item id",
			input: domain.CreateMenuItemInput{
				RestaurantID: restaurantID, Name: "Lassi", Price: price(99), Category: "Beverages",
				ImageBase64: base64.StdEncoding.EncodeToString(photo),
			},
			setup: func(d menuDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(newRestaurant(), nil).Once()
				d.items.On("CreateMenuItem", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.MenuItem).ID = itemID
				}).Return(nil).Once()
				d.store.On("Upload", mock.Anything, "menu_items/spice-villa/"+itemID+".jpg", photo, mock.MatchedBy(func(o assets.UploadOptions) bool {
					return o.ContentType == assets.ContentTypeJPEG && o.Upsert
				})).Return(&assets.Object{URL: "https://cdn/menu_items/spice-villa/" + itemID + ".jpg"}, nil).Once()
				d.items.On("UpdateMenuItemImage", mock.Anything, itemID, "https://cdn/menu_items/spice-villa/"+itemID+".jpg").Return(nil).Once()
				d.cache.On("Invalidate", mock.Anything, "spice-villa").Return(nil).Once()
			},
			check: func(t *testing.T, item *domain.MenuItem) {
				require.NotNil(t, item.ImageURL)
				assert.Contains(t, *item.ImageURL, itemID)
			},
		},
		{
			name:    "missing price",
			input:   domain.CreateMenuItemInput{RestaurantID: restaurantID, Name: "Soup"},
			setup:   func(d menuDeps) {},
			wantErr: service.ErrValidation,
		},
		{
			name:    "negative price",
			input:   domain.CreateMenuItemInput{RestaurantID: restaurantID, Name: "Soup", Price: price(-1)},
			setup:   func(d menuDeps) {},
			wantErr: service.ErrValidation,
		},
		{
			name:    "unknown category",
			input:   domain.CreateMenuItemInput{RestaurantID: restaurantID, Name: "Soup", Price: price(5), Category: "Cocktails"},
			setup:   func(d menuDeps) {},
			wantErr: service.ErrValidation,
		},
		{
			name:  "unknown restaurant",
			input: domain.CreateMenuItemInput{RestaurantID: restaurantID, Name: "Soup", Price: price(5)},
			setup: func(d menuDeps) {
				d.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(nil, service.ErrNotFound).Once()
			},
			wantErr: service.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newMenuService(t)
			testCase.setup(deps)

			item, err := svc.Create(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			testCase.check(t, item)
		})
	}
}

func TestMenuService_DeleteRemovesImage(t *testing.T) {
	svc, deps := newMenuService(t)
	ctx := context.Background()
	imageURL := "https://cdn/menu_items/spice-villa/" + itemID + ".jpg"

	deps.items.On("GetMenuItem", ctx, itemID).Return(&domain.MenuItem{ID: itemID, RestaurantID: restaurantID, ImageURL: &imageURL}, nil).Once()
	deps.store.On("PathFromURL", imageURL).Return("menu_items/spice-villa/"+itemID+".jpg", true).Once()
	deps.store.On("Remove", ctx, []string{"menu_items/spice-villa/" + itemID + ".jpg"}).Return(nil).Once()
	deps.items.On("DeleteMenuItem", ctx, itemID).Return(int64(1), nil).Once()
	deps.repo.On("GetRestaurant", ctx, restaurantID).Return(newRestaurant(), nil).Once()
	deps.cache.On("Invalidate", ctx, "spice-villa").Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, itemID))
}

func TestMenuService_DeleteSurvivesStorageFailure(t *testing.T) {
	svc, deps := newMenuService(t)
	ctx := context.Background()
	imageURL := "https://cdn/menu_items/spice-villa/" + itemID + ".jpg"

	deps.items.On("GetMenuItem", ctx, itemID).Return(&domain.MenuItem{ID: itemID, RestaurantID: restaurantID, ImageURL: &imageURL}, nil).Once()
	deps.store.On("PathFromURL", imageURL).Return("menu_items/spice-villa/"+itemID+".jpg", true).Once()
	deps.store.On("Remove", ctx, mock.Anything).Return(assert.AnError).Once()
	deps.items.On("DeleteMenuItem", ctx, itemID).Return(int64(1), nil).Once()
	deps.repo.On("GetRestaurant", ctx, restaurantID).Return(newRestaurant(), nil).Once()
	deps.cache.On("Invalidate", ctx, "spice-villa").Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, itemID))
}

func TestMenuService_DeleteUnknownItem(t *testing.T) {
	svc, deps := newMenuService(t)
	deps.items.On("GetMenuItem", mock.Anything, itemID).Return(nil, service.ErrNotFound).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), itemID), service.ErrNotFound)
}

func TestMenuService_PublicMenu(t *testing.T) {
	items := []domain.MenuItem{{ID: itemID, Name: "Lassi", Available: true}}

	tests := []struct {
		name    string
		setup   func(d menuDeps)
		wantErr error
		wantLen int
	}{
		{
			name: "cache hit",
			setup: func(d menuDeps) {
				d.cache.On("GetMenu", mock.Anything, "spice-villa").Return(&domain.PublicMenu{Restaurant: *newRestaurant(), Items: items}, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "cache miss loads and stores",
			setup: func(d menuDeps) {
				d.cache.On("GetMenu", mock.Anything, "spice-villa").Return(nil, nil).Once()
				d.repo.On("GetRestaurantBySlug", mock.Anything, "spice-villa").Return(newRestaurant(), nil).Once()
				d.items.On("ListMenuItems", mock.Anything, restaurantID, true).Return(items, nil).Once()
				d.cache.On("SetMenu", mock.Anything, "spice-villa", mock.AnythingOfType("*domain.PublicMenu")).Return(nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "cache down still serves",
			setup: func(d menuDeps) {
				d.cache.On("GetMenu", mock.Anything, "spice-villa").Return(nil, assert.AnError).Once()
				d.repo.On("GetRestaurantBySlug", mock.Anything, "spice-villa").Return(newRestaurant(), nil).Once()
				d.items.On("ListMenuItems", mock.Anything, restaurantID, true).Return(nil, nil).Once()
				d.cache.On("SetMenu", mock.Anything, "spice-villa", mock.Anything).Return(assert.AnError).Once()
			},
			wantLen: 0,
		},
		{
			name: "inactive restaurant",
			setup: func(d menuDeps) {
				rest := newRestaurant()
				rest.Active = false
				d.cache.On("GetMenu", mock.Anything, "spice-villa").Return(nil, nil).Once()
				d.repo.On("GetRestaurantBySlug", mock.Anything, "spice-villa").Return(rest, nil).Once()
			},
			wantErr: service.ErrInactive,
		},
		{
			name: "unknown slug",
			setup: func(d menuDeps) {
				d.cache.On("GetMenu", mock.Anything, "spice-villa").Return(nil, nil).Once()
				d.repo.On("GetRestaurantBySlug", mock.Anything, "spice-villa").Return(nil, service.ErrNotFound).Once()
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newMenuService(t)
			testCase.setup(deps)

			menu, err := svc.PublicMenu(context.Background(), "spice-villa")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, menu.Items)
			assert.Len(t, menu.Items, testCase.wantLen)
		})
	}
}

func TestMenuService_SetAvailability(t *testing.T) {
	svc, deps := newMenuService(t)
	deps.items.On("SetMenuItemAvailability", mock.Anything, itemID, false).
		Return(&domain.MenuItem{ID: itemID, RestaurantID: restaurantID, Available: false}, nil).Once()
	deps.repo.On("GetRestaurant", mock.Anything, restaurantID).Return(newRestaurant(), nil).Once()
	deps.cache.On("Invalidate", mock.Anything, "spice-villa").Return(nil).Once()

	item, err := svc.SetAvailability(context.Background(), itemID, false)

	require.NoError(t, err)
	assert.False(t, item.Available)
}
