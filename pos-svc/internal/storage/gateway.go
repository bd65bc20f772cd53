package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrUnitClosed = errors.New("unit of work already closed")

// Querier is the subset of *sql.DB / *sql.Tx the queries need.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Gateway hands out transactional units of work over a shared pool.
type Gateway struct {
	db      *sql.DB
	dialect Dialect
}

func NewGateway(db *sql.DB, dialect Dialect) *Gateway {
	return &Gateway{db: db, dialect: dialect}
}

func (g *Gateway) Dialect() Dialect { return g.dialect }

func (g *Gateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// Acquire begins a transaction. The caller must defer Release.
func (g *Gateway) Acquire(ctx context.Context) (*UnitOfWork, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}
	return &UnitOfWork{tx: tx}, nil
}

// Within runs fn in its own unit of work, committing when fn returns nil.
func (g *Gateway) Within(ctx context.Context, fn func(*UnitOfWork) error) error {
	uow, err := g.Acquire(ctx)
	if err != nil {
		return err
	}
	defer uow.Release()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit()
}

// ResetSchema drops every table and recreates the schema. Destroys all data.
func (g *Gateway) ResetSchema(ctx context.Context) error {
	return g.Within(ctx, func(uow *UnitOfWork) error {
		for _, stmt := range append(dropStatements(), g.dialect.createStatements()...) {
			if _, err := uow.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("reset schema `%s`: %w", stmt, err)
			}
		}
		return nil
	})
}

// EnsureSchema creates missing tables and indexes without touching data.
func (g *Gateway) EnsureSchema(ctx context.Context) error {
	return g.Within(ctx, func(uow *UnitOfWork) error {
		for _, stmt := range g.dialect.createStatements() {
			if _, err := uow.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
			}
		}
		return nil
	})
}

// UnitOfWork is one transaction. Writes become visible on Commit.
type UnitOfWork struct {
	tx     *sql.Tx
	closed bool
}

func (u *UnitOfWork) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return u.tx.ExecContext(ctx, query, args...)
}

func (u *UnitOfWork) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return u.tx.QueryContext(ctx, query, args...)
}

func (u *UnitOfWork) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return u.tx.QueryRowContext(ctx, query, args...)
}

func (u *UnitOfWork) Commit() error {
	if u.closed {
		return ErrUnitClosed
	}
	u.closed = true
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("commit unit of work: %w", err)
	}
	return nil
}

func (u *UnitOfWork) Rollback() error {
	if u.closed {
		return ErrUnitClosed
	}
	u.closed = true
	return u.tx.Rollback()
}

// Release rolls back a unit that was neither committed nor rolled back.
func (u *UnitOfWork) Release() {
	if !u.closed {
		_ = u.Rollback()
	}
}
