package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MarkLoader is a testify mock of service.MarkLoader.
type MarkLoader struct {
	mock.Mock
}

func (_m *MarkLoader) Load(ctx context.Context, rest *domain.Restaurant) []byte {
	ret := _m.Called(ctx, rest)
	var r0 []byte
	if val := ret.Get(0); val != nil {
		r0 = val.([]byte)
	}
	return r0
}

func NewMarkLoader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MarkLoader {
	m := &MarkLoader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
