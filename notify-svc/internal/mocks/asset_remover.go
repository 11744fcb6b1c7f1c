package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// AssetRemover is a testify mock of service.AssetRemover.
type AssetRemover struct {
	mock.Mock
}

func (_m *AssetRemover) Remove(ctx context.Context, paths ...string) error {
	ret := _m.Called(ctx, paths)
	r0 := ret.Error(0)
	return r0
}

func NewAssetRemover(t interface {
	mock.TestingT
	Cleanup(func())
}) *AssetRemover {
	m := &AssetRemover{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
