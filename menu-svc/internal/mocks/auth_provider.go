package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AuthProvider is a testify mock of service.AuthProvider.
type AuthProvider struct {
	mock.Mock
}

func (_m *AuthProvider) CreateUser(ctx context.Context, email string, password string) (*domain.AuthUser, error) {
	ret := _m.Called(ctx, email, password)
	var r0 *domain.AuthUser
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.AuthUser)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AuthProvider) DeleteUser(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

func (_m *AuthProvider) FindUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	ret := _m.Called(ctx, email)
	var r0 *domain.AuthUser
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.AuthUser)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AuthProvider) UpdatePassword(ctx context.Context, id string, password string) (*domain.AuthUser, error) {
	ret := _m.Called(ctx, id, password)
	var r0 *domain.AuthUser
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.AuthUser)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func NewAuthProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthProvider {
	m := &AuthProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
