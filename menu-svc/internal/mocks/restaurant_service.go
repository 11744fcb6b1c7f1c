package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantServiceInterface is a testify mock of service.RestaurantServiceInterface.
type RestaurantServiceInterface struct {
	mock.Mock
}

func (_m *RestaurantServiceInterface) Create(ctx context.Context, input domain.CreateRestaurantInput) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, input)
	var r0 *domain.Restaurant
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.Restaurant)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantServiceInterface) List(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if val := ret.Get(0); val != nil {
		r0 = val.([]domain.Restaurant)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantServiceInterface) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.Restaurant)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantServiceInterface) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

func (_m *RestaurantServiceInterface) SetActive(ctx context.Context, id string, active bool) error {
	ret := _m.Called(ctx, id, active)
	r0 := ret.Error(0)
	return r0
}

func NewRestaurantServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
