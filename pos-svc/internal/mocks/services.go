package mocks

import (
	"context"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuService is a mock type for the MenuService type.
type MenuService struct {
	mock.Mock
}

func (_m *MenuService) List(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, f)

	if rf, ok := ret.Get(0).(func(context.Context, domain.MenuItemFilter) ([]domain.MenuItem, error)); ok {
		return rf(ctx, f)
	}

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuService) ForDay(ctx context.Context, day string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, day)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.MenuItem, error)); ok {
		return rf(ctx, day)
	}

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int) (*domain.MenuItem, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.MenuItem) error); ok {
		return rf(ctx, item)
	}
	return ret.Error(0)
}

func (_m *MenuService) Update(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id, patch)

	if rf, ok := ret.Get(0).(func(context.Context, int, domain.MenuItemPatch) (*domain.MenuItem, error)); ok {
		return rf(ctx, id, patch)
	}

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// NewMenuService creates a new instance of MenuService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuService {
	m := &MenuService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// CustomerService is a mock type for the CustomerService type.
type CustomerService struct {
	mock.Mock
}

func (_m *CustomerService) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	ret := _m.Called(ctx, f)

	if rf, ok := ret.Get(0).(func(context.Context, domain.CustomerFilter) ([]domain.Customer, error)); ok {
		return rf(ctx, f)
	}

	var r0 []domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int) (*domain.Customer, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *CustomerService) Create(ctx context.Context, c *domain.Customer) error {
	ret := _m.Called(ctx, c)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Customer) error); ok {
		return rf(ctx, c)
	}
	return ret.Error(0)
}

func (_m *CustomerService) Update(ctx context.Context, id int, patch domain.CustomerPatch) (*domain.Customer, error) {
	ret := _m.Called(ctx, id, patch)

	if rf, ok := ret.Get(0).(func(context.Context, int, domain.CustomerPatch) (*domain.Customer, error)); ok {
		return rf(ctx, id, patch)
	}

	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}

	return r0, ret.Error(1)
}

// NewCustomerService creates a new instance of CustomerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCustomerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CustomerService {
	m := &CustomerService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OrderService is a mock type for the OrderService type.
type OrderService struct {
	mock.Mock
}

func (_m *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Order, error)); ok {
		return rf(ctx)
	}

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, customerID)

	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.Order, error)); ok {
		return rf(ctx, customerID)
	}

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int) (*domain.Order, error)); ok {
		return rf(ctx, id)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) Create(ctx context.Context, order domain.Order, idempotencyKey string) (*domain.Order, bool, error) {
	ret := _m.Called(ctx, order, idempotencyKey)

	if rf, ok := ret.Get(0).(func(context.Context, domain.Order, string) (*domain.Order, bool, error)); ok {
		return rf(ctx, order, idempotencyKey)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *OrderService) UpdateStatus(ctx context.Context, id int, target *domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, id, target)

	if rf, ok := ret.Get(0).(func(context.Context, int, *domain.OrderStatus) (*domain.Order, error)); ok {
		return rf(ctx, id, target)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) QRCode(ctx context.Context, id int) ([]byte, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, int) ([]byte, error)); ok {
		return rf(ctx, id)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewOrderService creates a new instance of OrderService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OpeningHoursService is a mock type for the OpeningHoursService type.
type OpeningHoursService struct {
	mock.Mock
}

func (_m *OpeningHoursService) Query(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error) {
	ret := _m.Called(ctx, f)

	if rf, ok := ret.Get(0).(func(context.Context, domain.OpeningHoursFilter) ([]domain.OpeningHours, error)); ok {
		return rf(ctx, f)
	}

	var r0 []domain.OpeningHours
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OpeningHours)
	}

	return r0, ret.Error(1)
}

func (_m *OpeningHoursService) ForDay(ctx context.Context, day string) ([]domain.OpeningHours, error) {
	ret := _m.Called(ctx, day)

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.OpeningHours, error)); ok {
		return rf(ctx, day)
	}

	var r0 []domain.OpeningHours
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OpeningHours)
	}

	return r0, ret.Error(1)
}

func (_m *OpeningHoursService) Special(ctx context.Context) ([]domain.OpeningHours, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.OpeningHours, error)); ok {
		return rf(ctx)
	}

	var r0 []domain.OpeningHours
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OpeningHours)
	}

	return r0, ret.Error(1)
}

// NewOpeningHoursService creates a new instance of OpeningHoursService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOpeningHoursService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OpeningHoursService {
	m := &OpeningHoursService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
