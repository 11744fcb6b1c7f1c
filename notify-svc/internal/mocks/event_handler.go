package mocks

import (
	"context"

	"qrmenu-platform/notify-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// EventHandler is a testify mock of service.EventHandler.
type EventHandler struct {
	mock.Mock
}

func (_m *EventHandler) Handle(ctx context.Context, event domain.Event) error {
	ret := _m.Called(ctx, event)
	r0 := ret.Error(0)
	return r0
}

func NewEventHandler(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventHandler {
	m := &EventHandler{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
