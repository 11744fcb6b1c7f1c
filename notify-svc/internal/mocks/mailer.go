package mocks

import (
	"context"

	"qrmenu-platform/notify-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mailer is a testify mock of service.Mailer.
type Mailer struct {
	mock.Mock
}

func (_m *Mailer) Send(ctx context.Context, email domain.Email) error {
	ret := _m.Called(ctx, email)
	r0 := ret.Error(0)
	return r0
}

func NewMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Mailer {
	m := &Mailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
