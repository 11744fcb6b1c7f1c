package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuServiceInterface is a testify mock of service.MenuServiceInterface.
type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.([]domain.MenuItem)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuServiceInterface) Create(ctx context.Context, input domain.CreateMenuItemInput) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, input)
	var r0 *domain.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.MenuItem)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuServiceInterface) Delete(ctx context.Context, itemID string) error {
	ret := _m.Called(ctx, itemID)
	r0 := ret.Error(0)
	return r0
}

func (_m *MenuServiceInterface) SetAvailability(ctx context.Context, itemID string, available bool) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, itemID, available)
	var r0 *domain.MenuItem
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.MenuItem)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuServiceInterface) PublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	ret := _m.Called(ctx, slug)
	var r0 *domain.PublicMenu
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.PublicMenu)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
