package storage

import (
	"context"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

// Repository serves each call from a single unit of work.
type Repository struct {
	gw *Gateway
}

func NewRepository(gw *Gateway) *Repository {
	return &Repository{gw: gw}
}

func query[T any](ctx context.Context, gw *Gateway, fn func(*Queries) (T, error)) (T, error) {
	var out T
	err := gw.Within(ctx, func(uow *UnitOfWork) error {
		var err error
		out, err = fn(NewQueries(uow))
		return err
	})
	return out, err
}

func (r *Repository) ListMenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	return query(ctx, r.gw, func(q *Queries) ([]domain.MenuItem, error) {
		return q.MenuItems(ctx, f)
	})
}

func (r *Repository) ListMenuItemsByDay(ctx context.Context, day time.Weekday) ([]domain.MenuItem, error) {
	return query(ctx, r.gw, func(q *Queries) ([]domain.MenuItem, error) {
		return q.MenuItemsForDay(ctx, day)
	})
}

func (r *Repository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return query(ctx, r.gw, func(q *Queries) (*domain.MenuItem, error) {
		return q.MenuItem(ctx, id)
	})
}

func (r *Repository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return r.gw.Within(ctx, func(uow *UnitOfWork) error {
		return NewQueries(uow).InsertMenuItem(ctx, item)
	})
}

// UpdateMenuItem loads the item, lets mutate change it, and stores the result
// in the same unit. An error from mutate discards the change.
func (r *Repository) UpdateMenuItem(ctx context.Context, id int, mutate func(*domain.MenuItem) error) (*domain.MenuItem, error) {
	return query(ctx, r.gw, func(q *Queries) (*domain.MenuItem, error) {
		item, err := q.MenuItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(item); err != nil {
			return nil, err
		}
		item.ID = id
		if err := q.SaveMenuItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	})
}

func (r *Repository) ListCustomers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	return query(ctx, r.gw, func(q *Queries) ([]domain.Customer, error) {
		return q.Customers(ctx, f)
	})
}

func (r *Repository) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	return query(ctx, r.gw, func(q *Queries) (*domain.Customer, error) {
		return q.Customer(ctx, id)
	})
}

func (r *Repository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	return r.gw.Within(ctx, func(uow *UnitOfWork) error {
		return NewQueries(uow).InsertCustomer(ctx, c)
	})
}

func (r *Repository) UpdateCustomer(ctx context.Context, id int, mutate func(*domain.Customer) error) (*domain.Customer, error) {
	return query(ctx, r.gw, func(q *Queries) (*domain.Customer, error) {
		c, err := q.Customer(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(c); err != nil {
			return nil, err
		}
		c.ID = id
		if err := q.SaveCustomer(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	})
}

func (r *Repository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return query(ctx, r.gw, func(q *Queries) ([]domain.Order, error) {
		return q.Orders(ctx)
	})
}

func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	return query(ctx, r.gw, func(q *Queries) ([]domain.Order, error) {
		return q.OrdersForCustomer(ctx, customerID)
	})
}

func (r *Repository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return query(ctx, r.gw, func(q *Queries) (*domain.Order, error) {
		return q.Order(ctx, id)
	})
}

// CreateOrder prices every line from the current menu, stores the order and
// its lines, and fills in ids and the total. Nothing is stored if the
// customer or any referenced menu item is missing.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return r.gw.Within(ctx, func(uow *UnitOfWork) error {
		q := NewQueries(uow)

		exists, err := q.CustomerExists(ctx, order.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCustomerNotFound
		}

		lines := make([]domain.PricedLine, 0, len(order.Items))
		for _, item := range order.Items {
			price, err := q.MenuItemPrice(ctx, item.MenuItemID)
			if err != nil {
				return err
			}
			lines = append(lines, domain.PricedLine{Price: price, Quantity: item.Quantity})
		}
		order.TotalAmount = domain.OrderTotal(lines)

		if err := q.InsertOrder(ctx, order); err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := q.InsertOrderItem(ctx, &order.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateOrder applies mutate to the stored order and persists its status.
func (r *Repository) UpdateOrder(ctx context.Context, id int, mutate func(*domain.Order) error) (*domain.Order, error) {
	return query(ctx, r.gw, func(q *Queries) (*domain.Order, error) {
		order, err := q.Order(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(order); err != nil {
			return nil, err
		}
		if err := q.SetOrderStatus(ctx, id, order.Status); err != nil {
			return nil, err
		}
		return order, nil
	})
}

func (r *Repository) ListOpeningHours(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error) {
	return query(ctx, r.gw, func(q *Queries) ([]domain.OpeningHours, error) {
		return q.OpeningHours(ctx, f)
	})
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.gw.Ping(ctx)
}
