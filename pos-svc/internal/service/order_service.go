package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

type OrderService struct {
	repository OrderRepository
	cache      IdempotencyCache
	publisher  OrderPublisher
	qr         QRGenerator
	log        *slog.Logger
	now        func() time.Time
}

// NewOrderService wires the order workflow. cache and publisher may be nil.
func NewOrderService(repository OrderRepository, cache IdempotencyCache, publisher OrderPublisher, qr QRGenerator, log *slog.Logger) *OrderService {
	return &OrderService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		qr:         qr,
		log:        log.With("component", "order-service"),
		now:        time.Now,
	}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repository.ListOrders(ctx)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	orders, err := s.repository.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNoOrdersForCustomer
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.repository.GetOrder(ctx, id)
}

// Create stores a new pending order placed now. With an idempotency key and a
// cache configured, a repeated key returns the first order and created=false.
func (s *OrderService) Create(ctx context.Context, order domain.Order, idempotencyKey string) (*domain.Order, bool, error) {
	order.Status = domain.StatusPending
	order.OrderDate = s.now().UTC()
	order.TotalAmount = 0

	reservedKey := ""
	if idempotencyKey != "" && s.cache != nil {
		existingID, reserved, err := s.cache.Reserve(ctx, idempotencyKey)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "idempotency cache unavailable", "error", err)
		case !reserved && existingID == 0:
			return nil, false, ErrOrderInFlight
		case !reserved:
			existing, err := s.repository.GetOrder(ctx, existingID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		default:
			reservedKey = idempotencyKey
		}
	}

	if err := s.repository.CreateOrder(ctx, &order); err != nil {
		if reservedKey != "" {
			_ = s.cache.Release(ctx, reservedKey)
		}
		return nil, false, err
	}
	if reservedKey != "" {
		if err := s.cache.Complete(ctx, reservedKey, order.ID); err != nil {
			s.log.WarnContext(ctx, "failed to record idempotency key", "order_id", order.ID, "error", err)
		}
	}

	s.publish(ctx, domain.EventOrderCreated, &order)
	return &order, true, nil
}

// UpdateStatus moves the order to target. A nil target returns the order unchanged.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, target *domain.OrderStatus) (*domain.Order, error) {
	if target == nil {
		return s.repository.GetOrder(ctx, id)
	}

	changed := false
	order, err := s.repository.UpdateOrder(ctx, id, func(o *domain.Order) error {
		if !o.Status.CanTransition(*target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, *target)
		}
		changed = o.Status != *target
		o.Status = *target
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publish(ctx, domain.EventOrderStatusChanged, order)
	}
	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.repository.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qr.Generate(id)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   s.now().UTC(),
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to publish order event", "type", eventType, "order_id", order.ID, "error", err)
	}
}
