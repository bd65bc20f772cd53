package mocks

import (
	"context"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// IdempotencyCache is a mock type for the IdempotencyCache type.
type IdempotencyCache struct {
	mock.Mock
}

func (_m *IdempotencyCache) Reserve(ctx context.Context, key string) (int, bool, error) {
	ret := _m.Called(ctx, key)

	if rf, ok := ret.Get(0).(func(context.Context, string) (int, bool, error)); ok {
		return rf(ctx, key)
	}

	return ret.Int(0), ret.Bool(1), ret.Error(2)
}

func (_m *IdempotencyCache) Complete(ctx context.Context, key string, orderID int) error {
	ret := _m.Called(ctx, key, orderID)

	if rf, ok := ret.Get(0).(func(context.Context, string, int) error); ok {
		return rf(ctx, key, orderID)
	}
	return ret.Error(0)
}

func (_m *IdempotencyCache) Release(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, key)
	}
	return ret.Error(0)
}

// NewIdempotencyCache creates a new instance of IdempotencyCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewIdempotencyCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdempotencyCache {
	m := &IdempotencyCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OrderPublisher is a mock type for the OrderPublisher type.
type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	ret := _m.Called(ctx, evt)

	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderEvent) error); ok {
		return rf(ctx, evt)
	}
	return ret.Error(0)
}

// NewOrderPublisher creates a new instance of OrderPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// QRGenerator is a mock type for the QRGenerator type.
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)

	if rf, ok := ret.Get(0).(func(int) ([]byte, error)); ok {
		return rf(orderID)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewQRGenerator creates a new instance of QRGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
