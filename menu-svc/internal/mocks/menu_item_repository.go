package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuItemRepository is a testify mock of service.MenuItemRepository.
type MenuItemRepository struct {
	mock.Mock
}

func (_m *MenuItemRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	r0 := ret.Error(0)
	return r0
}

func (_m *MenuItemRepository) ListMenuItems(ctx context.Context, restaurantID string, onlyAvailable bool) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, onlyAvailable)
	var r0 []domain.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.([]domain.MenuItem)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuItemRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.MenuItem)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuItemRepository) UpdateMenuItemImage(ctx context.Context, id string, imageURL string) error {
	ret := _m.Called(ctx, id, imageURL)
	r0 := ret.Error(0)
	return r0
}

func (_m *MenuItemRepository) SetMenuItemAvailability(ctx context.Context, id string, available bool) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id, available)
	var r0 *domain.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.MenuItem)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuItemRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	ret := _m.Called(ctx, id)
	var r0 int64
	if val, ok := ret.Get(0).(int64); ok {
		r0 = val
	}
	r1 := ret.Error(1)
	return r0, r1
}

func NewMenuItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
