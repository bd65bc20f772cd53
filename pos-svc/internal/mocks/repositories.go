package mocks

import (
	"context"
	"time"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuRepository is a mock type for the MenuRepository type.
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListMenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
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

func (_m *MenuRepository) ListMenuItemsByDay(ctx context.Context, day time.Weekday) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, day)

	if rf, ok := ret.Get(0).(func(context.Context, time.Weekday) ([]domain.MenuItem, error)); ok {
		return rf(ctx, day)
	}

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
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

func (_m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.MenuItem) error); ok {
		return rf(ctx, item)
	}
	return ret.Error(0)
}

func (_m *MenuRepository) UpdateMenuItem(ctx context.Context, id int, mutate func(*domain.MenuItem) error) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id, mutate)

	if rf, ok := ret.Get(0).(func(context.Context, int, func(*domain.MenuItem) error) (*domain.MenuItem, error)); ok {
		return rf(ctx, id, mutate)
	}

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// NewMenuRepository creates a new instance of MenuRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// CustomerRepository is a mock type for the CustomerRepository type.
type CustomerRepository struct {
	mock.Mock
}

func (_m *CustomerRepository) ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
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

func (_m *CustomerRepository) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
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

func (_m *CustomerRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	ret := _m.Called(ctx, c)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Customer) error); ok {
		return rf(ctx, c)
	}
	return ret.Error(0)
}

func (_m *CustomerRepository) UpdateCustomer(ctx context.Context, id int, mutate func(*domain.Customer) error) (*domain.Customer, error) {
	ret := _m.Called(ctx, id, mutate)

	if rf, ok := ret.Get(0).(func(context.Context, int, func(*domain.Customer) error) (*domain.Customer, error)); ok {
		return rf(ctx, id, mutate)
	}

	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}

	return r0, ret.Error(1)
}

// NewCustomerRepository creates a new instance of CustomerRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OrderRepository is a mock type for the OrderRepository type.
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
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

func (_m *OrderRepository) ListOrdersByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
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

func (_m *OrderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
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

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Order) error); ok {
		return rf(ctx, order)
	}
	return ret.Error(0)
}

func (_m *OrderRepository) UpdateOrder(ctx context.Context, id int, mutate func(*domain.Order) error) (*domain.Order, error) {
	ret := _m.Called(ctx, id, mutate)

	if rf, ok := ret.Get(0).(func(context.Context, int, func(*domain.Order) error) (*domain.Order, error)); ok {
		return rf(ctx, id, mutate)
	}

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// OpeningHoursRepository is a mock type for the OpeningHoursRepository type.
type OpeningHoursRepository struct {
	mock.Mock
}

func (_m *OpeningHoursRepository) ListOpeningHours(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error) {
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

// NewOpeningHoursRepository creates a new instance of OpeningHoursRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOpeningHoursRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OpeningHoursRepository {
	m := &OpeningHoursRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
