package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

const (
	menuItemColumns = `id, name, price, ingredients, category, labels,
		available_monday, available_tuesday, available_wednesday, available_thursday,
		available_friday, available_saturday, available_sunday`
	customerColumns     = "id, firstname, lastname, email, external_id, card_digits, street, city, state, zip, country, special, phone"
	orderColumns        = "id, customer_id, order_date, total_amount, status"
	orderItemColumns    = "id, order_id, menu_item_id, quantity, note"
	openingHoursColumns = "id, day, start_time, end_time, status, is_special"
)

// Queries runs the SQL shared by request handling and seeding against one
// querier, normally a unit of work. Placeholders are numbered in the order
// they appear so both drivers bind them the same way.
type Queries struct {
	q Querier
}

func NewQueries(q Querier) *Queries {
	return &Queries{q: q}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// where accumulates AND-ed predicates and their arguments.
type where struct {
	clauses []string
	args    []any
}

func (w *where) contains(column, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, "%"+value+"%")
	w.clauses = append(w.clauses, fmt.Sprintf("LOWER(%s) LIKE LOWER($%d)", column, len(w.args)))
}

func (w *where) equals(column string, value any) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *where) equalsFold(column, value string) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf("LOWER(%s) = LOWER($%d)", column, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// Menu items

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Price, &m.Ingredients, &m.Category, &m.Labels,
		&m.Monday, &m.Tuesday, &m.Wednesday, &m.Thursday, &m.Friday, &m.Saturday, &m.Sunday)
	return m, err
}

func (s *Queries) queryMenuItems(ctx context.Context, query string, args ...any) ([]domain.MenuItem, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Queries) MenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	var w where
	w.contains("name", f.Name)
	w.contains("category", f.Category)
	w.contains("labels", f.Labels)
	w.contains("ingredients", f.Ingredients)
	return s.queryMenuItems(ctx, "SELECT "+menuItemColumns+" FROM menu_items"+w.String()+" ORDER BY id", w.args...)
}

func (s *Queries) MenuItemsForDay(ctx context.Context, day time.Weekday) ([]domain.MenuItem, error) {
	return s.queryMenuItems(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE "+domain.DayColumn(day)+" = $1 ORDER BY id", true)
}

func (s *Queries) MenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := scanMenuItem(s.q.QueryRowContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// MenuItemPrice returns the current price of a menu item referenced by an order line.
func (s *Queries) MenuItemPrice(ctx context.Context, id int) (float64, error) {
	var price float64
	err := s.q.QueryRowContext(ctx, "SELECT price FROM menu_items WHERE id = $1", id).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, &domain.MenuItemMissingError{ID: id}
	}
	return price, err
}

func (s *Queries) InsertMenuItem(ctx context.Context, m *domain.MenuItem) error {
	return s.q.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, price, ingredients, category, labels,
			available_monday, available_tuesday, available_wednesday, available_thursday,
			available_friday, available_saturday, available_sunday)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		m.Name, m.Price, m.Ingredients, m.Category, m.Labels,
		m.Monday, m.Tuesday, m.Wednesday, m.Thursday, m.Friday, m.Saturday, m.Sunday,
	).Scan(&m.ID)
}

func (s *Queries) SaveMenuItem(ctx context.Context, m *domain.MenuItem) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE menu_items
		SET name=$1, price=$2, ingredients=$3, category=$4, labels=$5,
			available_monday=$6, available_tuesday=$7, available_wednesday=$8, available_thursday=$9,
			available_friday=$10, available_saturday=$11, available_sunday=$12
		WHERE id=$13`,
		m.Name, m.Price, m.Ingredients, m.Category, m.Labels,
		m.Monday, m.Tuesday, m.Wednesday, m.Thursday, m.Friday, m.Saturday, m.Sunday, m.ID)
	return affectedOrNotFound(res, err, domain.ErrMenuItemNotFound)
}

// Customers

func scanCustomer(row rowScanner) (domain.Customer, error) {
	var (
		c     domain.Customer
		phone sql.NullString
	)
	err := row.Scan(&c.ID, &c.Firstname, &c.Lastname, &c.Email, &c.ExternalID, &c.CardDigits,
		&c.Street, &c.City, &c.State, &c.Zip, &c.Country, &c.Special, &phone)
	c.Phone = nullString(phone)
	return c, err
}

func (s *Queries) Customers(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	var w where
	w.contains("firstname", f.Firstname)
	w.contains("lastname", f.Lastname)
	w.contains("email", f.Email)
	if f.ExternalID != "" {
		w.equals("external_id", f.ExternalID)
	}
	w.contains("phone", f.Phone)

	rows, err := s.q.QueryContext(ctx, "SELECT "+customerColumns+" FROM customers"+w.String()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *Queries) Customer(ctx context.Context, id int) (*domain.Customer, error) {
	c, err := scanCustomer(s.q.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Queries) CustomerExists(ctx context.Context, id int) (bool, error) {
	var n int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers WHERE id = $1", id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CustomerIDs returns every customer id in insertion order.
func (s *Queries) CustomerIDs(ctx context.Context) ([]int, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT id FROM customers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Queries) InsertCustomer(ctx context.Context, c *domain.Customer) error {
	err := s.q.QueryRowContext(ctx, `
		INSERT INTO customers (firstname, lastname, email, external_id, card_digits,
			street, city, state, zip, country, special, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		c.Firstname, c.Lastname, c.Email, c.ExternalID, c.CardDigits,
		c.Street, c.City, c.State, c.Zip, c.Country, c.Special, c.Phone,
	).Scan(&c.ID)
	return translate(err)
}

func (s *Queries) SaveCustomer(ctx context.Context, c *domain.Customer) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE customers
		SET firstname=$1, lastname=$2, email=$3, card_digits=$4, street=$5,
			city=$6, state=$7, zip=$8, country=$9, special=$10, phone=$11
		WHERE id=$12`,
		c.Firstname, c.Lastname, c.Email, c.CardDigits, c.Street,
		c.City, c.State, c.Zip, c.Country, c.Special, c.Phone, c.ID)
	return affectedOrNotFound(res, translate(err), domain.ErrCustomerNotFound)
}

// Orders

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &status)
	o.OrderDate = o.OrderDate.UTC()
	o.Status = domain.OrderStatus(status)
	o.Items = []domain.OrderItem{}
	return o, err
}

func (s *Queries) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// attachItems loads the lines selected by query and hangs them on their orders.
func (s *Queries) attachItems(ctx context.Context, orders []domain.Order, query string, args ...any) error {
	if len(orders) == 0 {
		return nil
	}
	index := make(map[int]int, len(orders))
	for i := range orders {
		index[orders[i].ID] = i
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item domain.OrderItem
			note sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &note); err != nil {
			return err
		}
		item.Note = nullString(note)
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

func (s *Queries) Orders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.queryOrders(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		return nil, err
	}
	err = s.attachItems(ctx, orders, "SELECT "+orderItemColumns+" FROM order_items ORDER BY id")
	return orders, err
}

func (s *Queries) OrdersForCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	orders, err := s.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE customer_id = $1 ORDER BY id", customerID)
	if err != nil {
		return nil, err
	}
	err = s.attachItems(ctx, orders, `
		SELECT `+orderItemColumns+` FROM order_items
		WHERE order_id IN (SELECT id FROM orders WHERE customer_id = $1)
		ORDER BY id`, customerID)
	return orders, err
}

func (s *Queries) Order(ctx context.Context, id int) (*domain.Order, error) {
	o, err := scanOrder(s.q.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	orders := []domain.Order{o}
	if err := s.attachItems(ctx, orders,
		"SELECT "+orderItemColumns+" FROM order_items WHERE order_id = $1 ORDER BY id", id); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// InsertOrder stores the order row only; lines are added with InsertOrderItem.
func (s *Queries) InsertOrder(ctx context.Context, o *domain.Order) error {
	return s.q.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, order_date, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		o.CustomerID, o.OrderDate.UTC(), o.TotalAmount, string(o.Status),
	).Scan(&o.ID)
}

func (s *Queries) InsertOrderItem(ctx context.Context, item *domain.OrderItem) error {
	return s.q.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, menu_item_id, quantity, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		item.OrderID, item.MenuItemID, item.Quantity, item.Note,
	).Scan(&item.ID)
}

func (s *Queries) SetOrderTotal(ctx context.Context, id int, total float64) error {
	res, err := s.q.ExecContext(ctx, "UPDATE orders SET total_amount=$1 WHERE id=$2", total, id)
	return affectedOrNotFound(res, err, domain.ErrOrderNotFound)
}

func (s *Queries) SetOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	res, err := s.q.ExecContext(ctx, "UPDATE orders SET status=$1 WHERE id=$2", string(status), id)
	return affectedOrNotFound(res, err, domain.ErrOrderNotFound)
}

// Opening hours

func (s *Queries) OpeningHours(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error) {
	var w where
	if f.Day != "" {
		w.equalsFold("day", f.Day)
	}
	if f.Special != nil {
		w.equals("is_special", *f.Special)
	}

	rows, err := s.q.QueryContext(ctx, "SELECT "+openingHoursColumns+" FROM opening_hours"+w.String()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := []domain.OpeningHours{}
	for rows.Next() {
		var (
			h          domain.OpeningHours
			start, end sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Day, &start, &end, &h.Status, &h.IsSpecial); err != nil {
			return nil, err
		}
		h.Start, h.End = nullString(start), nullString(end)
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (s *Queries) InsertOpeningHours(ctx context.Context, h *domain.OpeningHours) error {
	return s.q.QueryRowContext(ctx, `
		INSERT INTO opening_hours (day, start_time, end_time, status, is_special)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		h.Day, h.Start, h.End, h.Status, h.IsSpecial,
	).Scan(&h.ID)
}

// IsEmpty reports whether no seedable table holds any row.
func (s *Queries) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := s.q.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM menu_items)
			+ (SELECT COUNT(*) FROM customers)
			+ (SELECT COUNT(*) FROM orders)
			+ (SELECT COUNT(*) FROM opening_hours)`).Scan(&n)
	return n == 0, err
}

func affectedOrNotFound(res sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
