package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AccountServiceInterface is a testify mock of service.AccountServiceInterface.
type AccountServiceInterface struct {
	mock.Mock
}

func (_m *AccountServiceInterface) CreateLogin(ctx context.Context, input domain.CreateLoginInput) (*domain.LoginResult, error) {
	ret := _m.Called(ctx, input)
	var r0 *domain.LoginResult
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.LoginResult)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AccountServiceInterface) ResetPassword(ctx context.Context, email string, newPassword string) (*domain.AuthUser, error) {
	ret := _m.Called(ctx, email, newPassword)
	var r0 *domain.AuthUser
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.AuthUser)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func NewAccountServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountServiceInterface {
	m := &AccountServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
