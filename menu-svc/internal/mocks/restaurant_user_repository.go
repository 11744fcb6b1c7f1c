package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantUserRepository is a testify mock of service.RestaurantUserRepository.
type RestaurantUserRepository struct {
	mock.Mock
}

func (_m *RestaurantUserRepository) CreateRestaurantUser(ctx context.Context, user *domain.RestaurantUser) error {
	ret := _m.Called(ctx, user)
	r0 := ret.Error(0)
	return r0
}

func (_m *RestaurantUserRepository) RestaurantUserExists(ctx context.Context, email string) (bool, error) {
	ret := _m.Called(ctx, email)
	r0 := ret.Bool(0)
	r1 := ret.Error(1)
	return r0, r1
}

func NewRestaurantUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantUserRepository {
	m := &RestaurantUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
