package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Deduper is a testify mock of service.Deduper.
type Deduper struct {
	mock.Mock
}

func (_m *Deduper) FirstSeen(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	r0 := ret.Bool(0)
	r1 := ret.Error(1)
	return r0, r1
}

func NewDeduper(t interface {
	mock.TestingT
	Cleanup(func())
}) *Deduper {
	m := &Deduper{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
