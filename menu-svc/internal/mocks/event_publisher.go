package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// EventPublisher is a testify mock of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	ret := _m.Called(ctx, event)
	r0 := ret.Error(0)
	return r0
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
