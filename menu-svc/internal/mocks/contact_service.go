package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ContactServiceInterface is a testify mock of service.ContactServiceInterface.
type ContactServiceInterface struct {
	mock.Mock
}

func (_m *ContactServiceInterface) Submit(ctx context.Context, msg domain.ContactMessage) error {
	ret := _m.Called(ctx, msg)
	r0 := ret.Error(0)
	return r0
}

func NewContactServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactServiceInterface {
	m := &ContactServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
