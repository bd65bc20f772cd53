package storage

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var ErrUniqueViolation = errors.New("unique constraint violated")

// Dialect holds the DDL differences between the supported drivers.
type Dialect struct {
	Name      string
	serialPK  string
	timestamp string
}

var (
	Postgres = Dialect{Name: "postgres", serialPK: "SERIAL PRIMARY KEY", timestamp: "TIMESTAMPTZ"}
	SQLite   = Dialect{Name: "sqlite3", serialPK: "INTEGER PRIMARY KEY AUTOINCREMENT", timestamp: "TIMESTAMP"}
)

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name:
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("no dialect for driver %q", driver)
}

func (d Dialect) createStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS menu_items (
			id %s,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (price >= 0),
			ingredients TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			labels TEXT NOT NULL DEFAULT '',
			available_monday BOOLEAN NOT NULL DEFAULT FALSE,
			available_tuesday BOOLEAN NOT NULL DEFAULT FALSE,
			available_wednesday BOOLEAN NOT NULL DEFAULT FALSE,
			available_thursday BOOLEAN NOT NULL DEFAULT FALSE,
			available_friday BOOLEAN NOT NULL DEFAULT FALSE,
			available_saturday BOOLEAN NOT NULL DEFAULT FALSE,
			available_sunday BOOLEAN NOT NULL DEFAULT FALSE
		)`, d.serialPK),
		`CREATE INDEX IF NOT EXISTS idx_menu_items_name ON menu_items (name)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS customers (
			id %s,
			firstname TEXT NOT NULL,
			lastname TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			external_id TEXT NOT NULL UNIQUE,
			card_digits TEXT NOT NULL,
			street TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			zip TEXT NOT NULL,
			country TEXT NOT NULL,
			special BOOLEAN NOT NULL DEFAULT FALSE,
			phone TEXT
		)`, d.serialPK),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS orders (
			id %s,
			customer_id INTEGER NOT NULL REFERENCES customers (id),
			order_date %s NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending'
		)`, d.serialPK, d.timestamp),
		`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS order_items (
			id %s,
			order_id INTEGER NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL REFERENCES menu_items (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			note TEXT
		)`, d.serialPK),
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS opening_hours (
			id %s,
			day TEXT NOT NULL,
			start_time TEXT,
			end_time TEXT,
			status TEXT NOT NULL,
			is_special BOOLEAN NOT NULL DEFAULT FALSE
		)`, d.serialPK),
	}
}

// dropStatements lists tables children first so no CASCADE is needed.
func dropStatements() []string {
	return []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS opening_hours",
		"DROP TABLE IF EXISTS customers",
		"DROP TABLE IF EXISTS menu_items",
	}
}

// translate normalizes driver-specific constraint errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pqErr.Detail)
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, liteErr.Error())
	}
	return err
}
