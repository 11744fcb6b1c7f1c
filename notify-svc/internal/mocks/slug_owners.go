package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// SlugOwners is a testify mock of service.SlugOwners.
type SlugOwners struct {
	mock.Mock
}

func (_m *SlugOwners) SlugOwner(ctx context.Context, slug string) (string, bool, error) {
	ret := _m.Called(ctx, slug)
	r0 := ret.String(0)
	r1 := ret.Bool(1)
	r2 := ret.Error(2)
	return r0, r1, r2
}

func NewSlugOwners(t interface {
	mock.TestingT
	Cleanup(func())
}) *SlugOwners {
	m := &SlugOwners{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
