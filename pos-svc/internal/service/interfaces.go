package service

import (
	"context"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

type MenuRepository interface {
	ListMenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error)
	ListMenuItemsByDay(ctx context.Context, day time.Weekday) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, id int, mutate func(*domain.MenuItem) error) (*domain.MenuItem, error)
}

type CustomerRepository interface {
	ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	UpdateCustomer(ctx context.Context, id int, mutate func(*domain.Customer) error) (*domain.Customer, error)
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	UpdateOrder(ctx context.Context, id int, mutate func(*domain.Order) error) (*domain.Order, error)
}

type OpeningHoursRepository interface {
	ListOpeningHours(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error)
}

// IdempotencyCache maps client idempotency keys to created order ids.
type IdempotencyCache interface {
	Reserve(ctx context.Context, key string) (existingID int, reserved bool, err error)
	Complete(ctx context.Context, key string, orderID int) error
	Release(ctx context.Context, key string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type MenuServiceInterface interface {
	List(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error)
	ForDay(ctx context.Context, day string) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

type CustomerServiceInterface interface {
	List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, id int, patch domain.CustomerPatch) (*domain.Customer, error)
}

type OrderServiceInterface interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, order domain.Order, idempotencyKey string) (*domain.Order, bool, error)
	UpdateStatus(ctx context.Context, id int, target *domain.OrderStatus) (*domain.Order, error)
	QRCode(ctx context.Context, id int) ([]byte, error)
}

type OpeningHoursServiceInterface interface {
	Query(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error)
	ForDay(ctx context.Context, day string) ([]domain.OpeningHours, error)
	Special(ctx context.Context) ([]domain.OpeningHours, error)
}

var (
	_ MenuServiceInterface         = (*MenuService)(nil)
	_ CustomerServiceInterface     = (*CustomerService)(nil)
	_ OrderServiceInterface        = (*OrderService)(nil)
	_ OpeningHoursServiceInterface = (*OpeningHoursService)(nil)
)
