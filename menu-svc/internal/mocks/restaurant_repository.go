package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantRepository is a testify mock of service.RestaurantRepository.
type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)
	r0 := ret.Error(0)
	return r0
}

func (_m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if val := ret.Get(0); val != nil {
		r0 = val.([]domain.Restaurant)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.Restaurant)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, slug)
	var r0 *domain.Restaurant
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.Restaurant)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantRepository) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	ret := _m.Called(ctx, id)
	var r0 int64
	if val, ok := ret.Get(0).(int64); ok {
		r0 = val
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantRepository) SetRestaurantActive(ctx context.Context, id string, active bool) (int64, error) {
	ret := _m.Called(ctx, id, active)
	var r0 int64
	if val, ok := ret.Get(0).(int64); ok {
		r0 = val
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RestaurantRepository) UpdateRestaurantLogo(ctx context.Context, id string, logoURL string) error {
	ret := _m.Called(ctx, id, logoURL)
	r0 := ret.Error(0)
	return r0
}

func (_m *RestaurantRepository) SaveQRState(ctx context.Context, id string, state domain.QRState, force bool) (bool, error) {
	ret := _m.Called(ctx, id, state, force)
	r0 := ret.Bool(0)
	r1 := ret.Error(1)
	return r0, r1
}

func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
