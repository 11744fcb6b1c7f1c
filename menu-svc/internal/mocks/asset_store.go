package mocks

import (
	"context"

	"qrmenu-platform/assets"

	"github.com/stretchr/testify/mock"
)

// AssetStore is a testify mock of service.AssetStore.
type AssetStore struct {
	mock.Mock
}

func (_m *AssetStore) Upload(ctx context.Context, path string, data []byte, opts assets.UploadOptions) (*assets.Object, error) {
	ret := _m.Called(ctx, path, data, opts)
	var r0 *assets.Object
	if val := ret.Get(0); val != nil {
		r0 = val.(*assets.Object)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AssetStore) PublicURL(path string) string {
	ret := _m.Called(path)
	r0 := ret.String(0)
	return r0
}

func (_m *AssetStore) Download(ctx context.Context, path string) ([]byte, error) {
	ret := _m.Called(ctx, path)
	var r0 []byte
	if val := ret.Get(0); val != nil {
		r0 = val.([]byte)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AssetStore) Remove(ctx context.Context, paths ...string) error {
	ret := _m.Called(ctx, paths)
	r0 := ret.Error(0)
	return r0
}

func (_m *AssetStore) PathFromURL(publicURL string) (string, bool) {
	ret := _m.Called(publicURL)
	r0 := ret.String(0)
	r1 := ret.Bool(1)
	return r0, r1
}

func NewAssetStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AssetStore {
	m := &AssetStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
