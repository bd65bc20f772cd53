package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNoOrdersForCustomer  = errors.New("no orders found for this user")
	ErrOpeningHoursNotFound = errors.New("no opening hours found")
)

// MenuItemMissingError names the menu item an order line referenced.
type MenuItemMissingError struct {
	ID int
}

func (e *MenuItemMissingError) Error() string {
	return fmt.Sprintf("menu item with id %d not found", e.ID)
}

func (e *MenuItemMissingError) Is(target error) bool {
	return target == ErrMenuItemNotFound
}
