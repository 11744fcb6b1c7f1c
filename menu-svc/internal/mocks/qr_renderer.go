package mocks

import (
	"github.com/stretchr/testify/mock"
)

// QRRenderer is a testify mock of service.QRRenderer.
type QRRenderer struct {
	mock.Mock
}

func (_m *QRRenderer) Render(value string, mark []byte) ([]byte, error) {
	ret := _m.Called(value, mark)
	var r0 []byte
	if val := ret.Get(0); val != nil {
		r0 = val.([]byte)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func NewQRRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRRenderer {
	m := &QRRenderer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
