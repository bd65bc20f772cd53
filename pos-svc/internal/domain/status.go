package domain

import (
	"errors"
	"fmt"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var ErrUnknownStatus = errors.New("unknown order status")

// transitions lists the statuses reachable from each status in one step.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusDispatched, StatusCancelled},
	StatusDispatched: {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

func (s OrderStatus) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether an order may move from s to next.
// Re-applying the current status is allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
