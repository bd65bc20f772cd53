// Package seed populates the store with fixture data and demonstration orders.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"restaurant-pos/config"
	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/storage"
)

// StepResult describes one loader step.
type StepResult struct {
	Name    string
	Rows    int
	Skipped bool
	Err     error
}

type Report struct {
	Steps []StepResult
}

func (r Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Err joins the errors of every failed step.
func (r Report) Err() error {
	var errs []error
	for _, s := range r.Steps {
		if s.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
		}
	}
	return errors.Join(errs...)
}

type Loader struct {
	gw   *storage.Gateway
	fsys fs.FS
	log  *slog.Logger
	now  func() time.Time
}

func NewLoader(gw *storage.Gateway, fsys fs.FS, log *slog.Logger) *Loader {
	return &Loader{gw: gw, fsys: fsys, log: log.With("component", "seed"), now: time.Now}
}

// Run prepares the schema according to mode and loads the fixtures.
// Step failures are reported, not returned; the error covers schema setup only.
func (l *Loader) Run(ctx context.Context, mode string) (Report, error) {
	switch mode {
	case config.SeedReset:
		if err := l.gw.ResetSchema(ctx); err != nil {
			return Report{}, err
		}
		l.log.InfoContext(ctx, "schema recreated")
	case config.SeedEnsure, config.SeedOff:
		if err := l.gw.EnsureSchema(ctx); err != nil {
			return Report{}, err
		}
	default:
		return Report{}, fmt.Errorf("unknown seed mode %q", mode)
	}

	if mode == config.SeedOff {
		l.log.InfoContext(ctx, "seeding disabled")
		return Report{}, nil
	}
	if mode == config.SeedEnsure {
		var empty bool
		err := l.gw.Within(ctx, func(uow *storage.UnitOfWork) error {
			var err error
			empty, err = storage.NewQueries(uow).IsEmpty(ctx)
			return err
		})
		if err != nil {
			return Report{}, fmt.Errorf("check store: %w", err)
		}
		if !empty {
			l.log.InfoContext(ctx, "store already populated, skipping seed")
			return Report{}, nil
		}
	}

	return l.load(ctx), nil
}

type step struct {
	name  string
	stage func(ctx context.Context, q *storage.Queries) (int, error)
}

func (l *Loader) load(ctx context.Context) Report {
	var report Report
	for _, s := range []step{
		{name: "menu", stage: l.stageMenu},
		{name: "specials", stage: l.stageSpecials},
		{name: "customers", stage: l.stageCustomers},
		{name: "opening_hours", stage: l.stageOpeningHours},
	} {
		result := StepResult{Name: s.name}
		result.Err = l.gw.Within(ctx, func(uow *storage.UnitOfWork) error {
			n, err := s.stage(ctx, storage.NewQueries(uow))
			result.Rows = n
			return err
		})
		if result.Err != nil {
			result.Rows = 0
		}
		l.logStep(ctx, result)
		report.Steps = append(report.Steps, result)
	}

	orders := l.createOrders(ctx)
	l.logStep(ctx, orders)
	report.Steps = append(report.Steps, orders)
	return report
}

func (l *Loader) logStep(ctx context.Context, r StepResult) {
	switch {
	case r.Err != nil:
		l.log.ErrorContext(ctx, "seed step failed, rolled back", "step", r.Name, "error", r.Err)
	case r.Skipped:
		l.log.WarnContext(ctx, "seed step skipped", "step", r.Name)
	default:
		l.log.InfoContext(ctx, "seed step loaded", "step", r.Name, "rows", r.Rows)
	}
}

func (l *Loader) stageMenu(ctx context.Context, q *storage.Queries) (int, error) {
	groups, err := readGroups[menuRecord](l.fsys, menuFile)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, g := range groups {
		for _, rec := range g.Items {
			item := domain.NewRegularMenuItem(rec.Name, rec.Price, rec.Ingredients, g.Key, rec.Label)
			if err := q.InsertMenuItem(ctx, &item); err != nil {
				return n, fmt.Errorf("menu item %q: %w", rec.Name, err)
			}
			n++
		}
	}
	return n, nil
}

func (l *Loader) stageSpecials(ctx context.Context, q *storage.Queries) (int, error) {
	groups, err := readGroups[menuRecord](l.fsys, specialsFile)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, g := range groups {
		day, err := domain.ParseDay(g.Key)
		if err != nil {
			return n, fmt.Errorf("specials key %q: %w", g.Key, err)
		}
		for _, rec := range g.Items {
			item := domain.NewSpecialMenuItem(rec.Name, rec.Price, rec.Ingredients, rec.Label, day)
			if err := q.InsertMenuItem(ctx, &item); err != nil {
				return n, fmt.Errorf("special %q: %w", rec.Name, err)
			}
			n++
		}
	}
	return n, nil
}

func (l *Loader) stageCustomers(ctx context.Context, q *storage.Queries) (int, error) {
	records, err := readList[customerRecord](l.fsys, customersFile)
	if err != nil {
		return 0, err
	}
	for i, rec := range records {
		special, err := rec.special()
		if err != nil {
			return i, err
		}
		c := domain.Customer{
			Firstname:  rec.Firstname,
			Lastname:   rec.Lastname,
			Email:      rec.Email,
			ExternalID: rec.ID,
			CardDigits: rec.CardDigits,
			Street:     rec.Address.Street,
			City:       rec.Address.City,
			State:      rec.Address.State,
			Zip:        rec.Address.Zip,
			Country:    rec.Address.Country,
			Special:    special,
			Phone:      rec.Phone,
		}
		if err := q.InsertCustomer(ctx, &c); err != nil {
			return i, fmt.Errorf("customer %s: %w", rec.ID, err)
		}
	}
	return len(records), nil
}

func (l *Loader) stageOpeningHours(ctx context.Context, q *storage.Queries) (int, error) {
	groups, err := readGroups[openingHoursRecord](l.fsys, openingHoursFile)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, g := range groups {
		for _, rec := range g.Items {
			h := domain.NewOpeningHours(rec.Day, rec.Start, rec.End, rec.Status, g.Key == "special")
			if err := q.InsertOpeningHours(ctx, &h); err != nil {
				return n, fmt.Errorf("opening hours %s: %w", rec.Day, err)
			}
			n++
		}
	}
	return n, nil
}

const (
	minSeedCustomers = 10
	minSeedMenuItems = 2
)

// demoOrders picks customers by ordinal position and sets fixed ages and statuses.
var demoOrders = []struct {
	customer int
	age      time.Duration
	status   domain.OrderStatus
}{
	{customer: 0, age: 5 * time.Hour, status: domain.StatusDelivered},
	{customer: 3, age: 4 * time.Hour, status: domain.StatusDelivered},
	{customer: 5, age: 3 * time.Hour, status: domain.StatusDispatched},
	{customer: 7, age: 2 * time.Hour, status: domain.StatusInProgress},
	{customer: 9, age: 1 * time.Hour, status: domain.StatusPending},
}

// createOrders writes the demonstration orders, one unit per order. The
// first failure stops the step; orders already committed are kept.
func (l *Loader) createOrders(ctx context.Context) StepResult {
	result := StepResult{Name: "orders"}

	var (
		customerIDs []int
		menu        []domain.MenuItem
	)
	result.Err = l.gw.Within(ctx, func(uow *storage.UnitOfWork) error {
		q := storage.NewQueries(uow)
		var err error
		if customerIDs, err = q.CustomerIDs(ctx); err != nil {
			return err
		}
		menu, err = q.MenuItems(ctx, domain.MenuItemFilter{})
		return err
	})
	if result.Err != nil {
		return result
	}
	if len(customerIDs) < minSeedCustomers || len(menu) < minSeedMenuItems {
		l.log.WarnContext(ctx, "not enough data for demonstration orders",
			"customers", len(customerIDs), "menu_items", len(menu))
		result.Skipped = true
		return result
	}

	now := l.now().UTC()
	for i, plan := range demoOrders {
		err := l.gw.Within(ctx, func(uow *storage.UnitOfWork) error {
			q := storage.NewQueries(uow)

			order := domain.NewOrder(customerIDs[plan.customer], now.Add(-plan.age), plan.status)
			if err := q.InsertOrder(ctx, &order); err != nil {
				return err
			}

			var lines []domain.PricedLine
			for _, m := range menu[:minSeedMenuItems] {
				note := "Fixed note for " + m.Name
				item := domain.NewOrderItem(m.ID, 1, &note)
				item.OrderID = order.ID
				if err := q.InsertOrderItem(ctx, &item); err != nil {
					return err
				}
				lines = append(lines, domain.PricedLine{Price: m.Price, Quantity: item.Quantity})
			}
			return q.SetOrderTotal(ctx, order.ID, domain.OrderTotal(lines))
		})
		if err != nil {
			result.Err = fmt.Errorf("order %d: %w", i+1, err)
			return result
		}
		result.Rows++
	}
	return result
}
