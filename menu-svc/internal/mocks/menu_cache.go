package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuCache is a testify mock of service.MenuCache.
type MenuCache struct {
	mock.Mock
}

func (_m *MenuCache) GetMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	ret := _m.Called(ctx, slug)
	var r0 *domain.PublicMenu
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.PublicMenu)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *MenuCache) SetMenu(ctx context.Context, slug string, menu *domain.PublicMenu) error {
	ret := _m.Called(ctx, slug, menu)
	r0 := ret.Error(0)
	return r0
}

func (_m *MenuCache) Invalidate(ctx context.Context, slug string) error {
	ret := _m.Called(ctx, slug)
	r0 := ret.Error(0)
	return r0
}

func NewMenuCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
