package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/mocks"
	"restaurant-pos/pos-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMenuService_ForDay(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := NewMenuService(repo)
	ctx := context.Background()

	repo.On("ListMenuItemsByDay", ctx, time.Monday).Return([]domain.MenuItem{{ID: 1}}, nil).Once()
	items, err := svc.ForDay(ctx, "MONDAY")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ForDay(ctx, "someday")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestMenuService_Create(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := NewMenuService(repo)
	ctx := context.Background()

	tests := []struct {
		name          string
		item          domain.MenuItem
		prepareMocks  func()
		expectedError error
	}{
		{
			name:         "regular item",
			item:         domain.NewRegularMenuItem("Soup", 4, nil, "starters", ""),
			prepareMocks: func() { repo.On("CreateMenuItem", ctx, mock.Anything).Return(nil).Once() },
		},
		{
			name: "special on two days",
			item: func() domain.MenuItem {
				item := domain.NewSpecialMenuItem("Stew", 9, nil, "", time.Monday)
				item.Tuesday = true
				return item
			}(),
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidMenuItem,
		},
		{
			name:          "negative price",
			item:          domain.NewRegularMenuItem("Soup", -4, nil, "starters", ""),
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidMenuItem,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Create(ctx, &testCase.item)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuService_UpdateChecksInvariantsInsideUnit(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := NewMenuService(repo)
	ctx := context.Background()

	stored := domain.NewSpecialMenuItem("Stew", 9, nil, "", time.Monday)
	stored.ID = 5
	runMutate := func(_ context.Context, _ int, mutate func(*domain.MenuItem) error) (*domain.MenuItem, error) {
		item := stored
		if err := mutate(&item); err != nil {
			return nil, err
		}
		return &item, nil
	}
	repo.On("UpdateMenuItem", ctx, 5, mock.Anything).Return(runMutate).Twice()

	price := 11.0
	updated, err := svc.Update(ctx, 5, domain.MenuItemPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 11.0, updated.Price)

	_, err = svc.Update(ctx, 5, domain.MenuItemPatch{Days: map[time.Weekday]bool{time.Friday: true}})
	assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)
}

func TestCustomerService_DuplicateMapsToConflict(t *testing.T) {
	repo := mocks.NewCustomerRepository(t)
	svc := NewCustomerService(repo)
	ctx := context.Background()

	unique := fmt.Errorf("%w: email", storage.ErrUniqueViolation)
	repo.On("CreateCustomer", ctx, mock.Anything).Return(unique).Once()
	repo.On("UpdateCustomer", ctx, 3, mock.Anything).Return(nil, unique).Once()
	repo.On("UpdateCustomer", ctx, 4, mock.Anything).Return(nil, domain.ErrCustomerNotFound).Once()

	assert.ErrorIs(t, svc.Create(ctx, &domain.Customer{}), ErrDuplicateCustomer)

	_, err := svc.Update(ctx, 3, domain.CustomerPatch{})
	assert.ErrorIs(t, err, ErrDuplicateCustomer)

	_, err = svc.Update(ctx, 4, domain.CustomerPatch{})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func newOrderService(t *testing.T, withCache bool) (*OrderService, *mocks.OrderRepository, *mocks.IdempotencyCache, *mocks.OrderPublisher, *mocks.QRGenerator) {
	repo := mocks.NewOrderRepository(t)
	cache := mocks.NewIdempotencyCache(t)
	publisher := mocks.NewOrderPublisher(t)
	qr := mocks.NewQRGenerator(t)

	var c IdempotencyCache
	if withCache {
		c = cache
	}
	svc := NewOrderService(repo, c, publisher, qr, discardLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, cache, publisher, qr
}

func storeAs(id int, total float64) func(context.Context, *domain.Order) error {
	return func(_ context.Context, o *domain.Order) error {
		o.ID = id
		o.TotalAmount = total
		return nil
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.NewOrder(1, time.Time{}, domain.StatusDelivered)
	input.TotalAmount = 999
	input.Items = []domain.OrderItem{domain.NewOrderItem(2, 1, nil)}

	isPendingNow := mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.StatusPending && o.OrderDate.Equal(fixedNow) && o.TotalAmount == 0
	})

	tests := []struct {
		name          string
		key           string
		withCache     bool
		prepareMocks  func(repo *mocks.OrderRepository, cache *mocks.IdempotencyCache, publisher *mocks.OrderPublisher)
		expectedID    int
		expectCreated bool
		expectedError error
	}{
		{
			name: "success_without_key",
			prepareMocks: func(repo *mocks.OrderRepository, _ *mocks.IdempotencyCache, publisher *mocks.OrderPublisher) {
				repo.On("CreateOrder", ctx, isPendingNow).Return(storeAs(10, 12.5)).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(evt domain.OrderEvent) bool {
					return evt.Type == domain.EventOrderCreated && evt.OrderID == 10 && evt.TotalAmount == 12.5
				})).Return(nil).Once()
			},
			expectedID:    10,
			expectCreated: true,
		},
		{
			name:      "key_reserved_then_completed",
			key:       "k1",
			withCache: true,
			prepareMocks: func(repo *mocks.OrderRepository, cache *mocks.IdempotencyCache, publisher *mocks.OrderPublisher) {
				cache.On("Reserve", ctx, "k1").Return(0, true, nil).Once()
				repo.On("CreateOrder", ctx, isPendingNow).Return(storeAs(11, 3)).Once()
				cache.On("Complete", ctx, "k1", 11).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedID:    11,
			expectCreated: true,
		},
		{
			name:      "replay_returns_first_order",
			key:       "k2",
			withCache: true,
			prepareMocks: func(repo *mocks.OrderRepository, cache *mocks.IdempotencyCache, _ *mocks.OrderPublisher) {
				cache.On("Reserve", ctx, "k2").Return(7, false, nil).Once()
				repo.On("GetOrder", ctx, 7).Return(&domain.Order{ID: 7}, nil).Once()
			},
			expectedID: 7,
		},
		{
			name:      "replay_while_in_flight",
			key:       "k3",
			withCache: true,
			prepareMocks: func(_ *mocks.OrderRepository, cache *mocks.IdempotencyCache, _ *mocks.OrderPublisher) {
				cache.On("Reserve", ctx, "k3").Return(0, false, nil).Once()
			},
			expectedError: ErrOrderInFlight,
		},
		{
			name:      "cache_down_still_creates",
			key:       "k4",
			withCache: true,
			prepareMocks: func(repo *mocks.OrderRepository, cache *mocks.IdempotencyCache, publisher *mocks.OrderPublisher) {
				cache.On("Reserve", ctx, "k4").Return(0, false, errors.New("connection refused")).Once()
				repo.On("CreateOrder", ctx, isPendingNow).Return(storeAs(12, 1)).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			expectedID:    12,
			expectCreated: true,
		},
		{
			name:      "missing_menu_item_releases_key",
			key:       "k5",
			withCache: true,
			prepareMocks: func(repo *mocks.OrderRepository, cache *mocks.IdempotencyCache, _ *mocks.OrderPublisher) {
				cache.On("Reserve", ctx, "k5").Return(0, true, nil).Once()
				repo.On("CreateOrder", ctx, mock.Anything).Return(&domain.MenuItemMissingError{ID: 2}).Once()
				cache.On("Release", ctx, "k5").Return(nil).Once()
			},
			expectedError: domain.ErrMenuItemNotFound,
		},
		{
			name: "key_ignored_without_cache",
			key:  "k6",
			prepareMocks: func(repo *mocks.OrderRepository, _ *mocks.IdempotencyCache, publisher *mocks.OrderPublisher) {
				repo.On("CreateOrder", ctx, isPendingNow).Return(storeAs(13, 1)).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedID:    13,
			expectCreated: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repo, cache, publisher, _ := newOrderService(t, testCase.withCache)
			testCase.prepareMocks(repo, cache, publisher)

			order, created, err := svc.Create(ctx, input, testCase.key)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedID, order.ID)
			assert.Equal(t, testCase.expectCreated, created)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	status := func(s domain.OrderStatus) *domain.OrderStatus { return &s }

	tests := []struct {
		name          string
		current       domain.OrderStatus
		target        *domain.OrderStatus
		expectPublish bool
		expectedError error
	}{
		{name: "pending_to_in_progress", current: domain.StatusPending, target: status(domain.StatusInProgress), expectPublish: true},
		{name: "dispatched_to_cancelled", current: domain.StatusDispatched, target: status(domain.StatusCancelled), expectPublish: true},
		{name: "same_status_is_noop", current: domain.StatusDispatched, target: status(domain.StatusDispatched)},
		{name: "skip_ahead_rejected", current: domain.StatusPending, target: status(domain.StatusDelivered), expectedError: ErrInvalidTransition},
		{name: "terminal_rejected", current: domain.StatusDelivered, target: status(domain.StatusCancelled), expectedError: ErrInvalidTransition},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repo, _, publisher, _ := newOrderService(t, false)

			repo.On("UpdateOrder", ctx, 4, mock.Anything).Return(
				func(_ context.Context, id int, mutate func(*domain.Order) error) (*domain.Order, error) {
					o := &domain.Order{ID: id, Status: testCase.current}
					if err := mutate(o); err != nil {
						return nil, err
					}
					return o, nil
				}).Once()
			if testCase.expectPublish {
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(evt domain.OrderEvent) bool {
					return evt.Type == domain.EventOrderStatusChanged && evt.Status == *testCase.target
				})).Return(nil).Once()
			}

			order, err := svc.UpdateStatus(ctx, 4, testCase.target)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *testCase.target, order.Status)
		})
	}

	t.Run("empty_patch_returns_current", func(t *testing.T) {
		svc, repo, _, _, _ := newOrderService(t, false)
		repo.On("GetOrder", ctx, 4).Return(&domain.Order{ID: 4, Status: domain.StatusPending}, nil).Once()

		order, err := svc.UpdateStatus(ctx, 4, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
	})
}

func TestOrderService_ListByCustomer(t *testing.T) {
	svc, repo, _, _, _ := newOrderService(t, false)
	ctx := context.Background()

	repo.On("ListOrdersByCustomer", ctx, 1).Return([]domain.Order{{ID: 1}}, nil).Once()
	repo.On("ListOrdersByCustomer", ctx, 2).Return([]domain.Order{}, nil).Once()

	orders, err := svc.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.ListByCustomer(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNoOrdersForCustomer)
}

func TestOrderService_QRCode(t *testing.T) {
	svc, repo, _, _, qr := newOrderService(t, false)
	ctx := context.Background()

	repo.On("GetOrder", ctx, 1).Return(&domain.Order{ID: 1}, nil).Once()
	repo.On("GetOrder", ctx, 2).Return(nil, domain.ErrOrderNotFound).Once()
	qr.On("Generate", 1).Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.QRCode(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	assert.Equal(t, "http://localhost:8080/api/orders/42", gen.Link(42))

	png, err := gen.Generate(42)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestOpeningHoursService(t *testing.T) {
	repo := mocks.NewOpeningHoursRepository(t)
	svc := NewOpeningHoursService(repo)
	ctx := context.Background()

	repo.On("ListOpeningHours", ctx, domain.OpeningHoursFilter{Day: "Monday"}).
		Return([]domain.OpeningHours{{Day: "Monday"}}, nil).Once()
	repo.On("ListOpeningHours", ctx, domain.OpeningHoursFilter{Day: "Funday"}).
		Return([]domain.OpeningHours{}, nil).Once()
	repo.On("ListOpeningHours", ctx, mock.MatchedBy(func(f domain.OpeningHoursFilter) bool {
		return f.Special != nil && *f.Special
	})).Return([]domain.OpeningHours{}, nil).Once()

	hours, err := svc.ForDay(ctx, "Monday")
	require.NoError(t, err)
	assert.Len(t, hours, 1)

	_, err = svc.ForDay(ctx, "Funday")
	assert.ErrorIs(t, err, domain.ErrOpeningHoursNotFound)

	special, err := svc.Special(ctx)
	require.NoError(t, err)
	assert.Empty(t, special)
}
