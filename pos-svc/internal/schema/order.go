package schema

import (
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

type OrderItemCreate struct {
	MenuItemID int     `json:"menu_item_id" validate:"gt=0"`
	Quantity   int     `json:"quantity" validate:"gt=0"`
	Note       *string `json:"note"`
}

// OrderCreate accepts order_date, status and total_amount for compatibility
// but the server always sets them itself.
type OrderCreate struct {
	CustomerID  int               `json:"customer_id" validate:"gt=0"`
	Items       []OrderItemCreate `json:"items" validate:"required,min=1,dive"`
	OrderDate   *time.Time        `json:"order_date"`
	Status      *string           `json:"status"`
	TotalAmount *float64          `json:"total_amount"`
}

// Order builds an unpriced pending order; the placement time is set on create.
func (in OrderCreate) Order() domain.Order {
	order := domain.NewOrder(in.CustomerID, time.Time{}, domain.StatusPending)
	for _, item := range in.Items {
		order.Items = append(order.Items, domain.NewOrderItem(item.MenuItemID, item.Quantity, item.Note))
	}
	return order
}

type OrderUpdate struct {
	Status *string `json:"status" validate:"omitnil,oneof=pending in_progress dispatched delivered cancelled"`
}

// TargetStatus returns the requested status, if any.
func (in OrderUpdate) TargetStatus() (domain.OrderStatus, bool) {
	if in.Status == nil {
		return "", false
	}
	return domain.OrderStatus(*in.Status), true
}
