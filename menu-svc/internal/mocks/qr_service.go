package mocks

import (
	"context"

	"qrmenu-platform/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// QRServiceInterface is a testify mock of service.QRServiceInterface.
type QRServiceInterface struct {
	mock.Mock
}

func (_m *QRServiceInterface) Publish(ctx context.Context, req domain.PublishRequest) (*domain.QRPublication, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.QRPublication
	if val := ret.Get(0); val != nil {
		r0 = val.(*domain.QRPublication)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func NewQRServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRServiceInterface {
	m := &QRServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
