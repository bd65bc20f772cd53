package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SpecialCategory is the category every daily special is stored under.
const SpecialCategory = "Special"

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Ingredients string  `json:"ingredients"`
	Category    string  `json:"category"`
	Labels      string  `json:"labels"`
	Availability
}

// NewRegularMenuItem builds an item that can be ordered every day.
func NewRegularMenuItem(name string, price float64, ingredients []string, category, labels string) MenuItem {
	return MenuItem{
		Name:         name,
		Price:        price,
		Ingredients:  strings.Join(ingredients, ", "),
		Category:     category,
		Labels:       labels,
		Availability: AllDays(),
	}
}

// NewSpecialMenuItem builds a special that is only available on day.
func NewSpecialMenuItem(name string, price float64, ingredients []string, labels string, day time.Weekday) MenuItem {
	return MenuItem{
		Name:         name,
		Price:        price,
		Ingredients:  strings.Join(ingredients, ", "),
		Category:     SpecialCategory,
		Labels:       labels,
		Availability: OnlyOn(day),
	}
}

var ErrInvalidMenuItem = errors.New("invalid menu item")

// CheckInvariants reports entity-level rules a stored item must satisfy.
func (m MenuItem) CheckInvariants() error {
	if m.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidMenuItem)
	}
	if m.Category == SpecialCategory && m.Availability.Count() != 1 {
		return fmt.Errorf("%w: special items must be available on exactly one day", ErrInvalidMenuItem)
	}
	return nil
}

type MenuItemFilter struct {
	Name        string
	Category    string
	Labels      string
	Ingredients string
}

// MenuItemPatch holds the fields of a sparse update; nil means unchanged.
type MenuItemPatch struct {
	Name        *string
	Price       *float64
	Ingredients *string
	Category    *string
	Labels      *string
	Days        map[time.Weekday]bool
}

func (p MenuItemPatch) Apply(m *MenuItem) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Ingredients != nil {
		m.Ingredients = *p.Ingredients
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Labels != nil {
		m.Labels = *p.Labels
	}
	for day, on := range p.Days {
		m.Availability.Set(day, on)
	}
}

type Customer struct {
	ID         int     `json:"id"`
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Email      string  `json:"email"`
	ExternalID string  `json:"external_id"`
	CardDigits string  `json:"card_digits"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Zip        string  `json:"zip"`
	Country    string  `json:"country"`
	Special    bool    `json:"special"`
	Phone      *string `json:"phone"`
}

type CustomerFilter struct {
	Firstname  string
	Lastname   string
	Email      string
	ExternalID string
	Phone      string
}

type CustomerPatch struct {
	Firstname  *string
	Lastname   *string
	Email      *string
	Phone      *string
	Special    *bool
	CardDigits *string
	Street     *string
	City       *string
	State      *string
	Zip        *string
	Country    *string
}

func (p CustomerPatch) Apply(c *Customer) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Firstname, p.Firstname)
	set(&c.Lastname, p.Lastname)
	set(&c.Email, p.Email)
	set(&c.CardDigits, p.CardDigits)
	set(&c.Street, p.Street)
	set(&c.City, p.City)
	set(&c.State, p.State)
	set(&c.Zip, p.Zip)
	set(&c.Country, p.Country)
	if p.Phone != nil {
		phone := *p.Phone
		c.Phone = &phone
	}
	if p.Special != nil {
		c.Special = *p.Special
	}
}

type Order struct {
	ID          int         `json:"id"`
	CustomerID  int         `json:"customer_id"`
	OrderDate   time.Time   `json:"order_date"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
}

// NewOrder builds an order shell; the total is filled in once items are priced.
func NewOrder(customerID int, date time.Time, status OrderStatus) Order {
	return Order{
		CustomerID: customerID,
		OrderDate:  date.UTC(),
		Status:     status,
		Items:      []OrderItem{},
	}
}

type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Note       *string `json:"note"`
}

func NewOrderItem(menuItemID, quantity int, note *string) OrderItem {
	return OrderItem{MenuItemID: menuItemID, Quantity: quantity, Note: note}
}

// PricedLine is an order line with the menu price captured at creation time.
type PricedLine struct {
	Price    float64
	Quantity int
}

// OrderTotal sums price × quantity in decimal arithmetic.
func OrderTotal(lines []PricedLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.InexactFloat64()
}

type OpeningHours struct {
	ID        int     `json:"id"`
	Day       string  `json:"day"`
	Start     *string `json:"start"`
	End       *string `json:"end"`
	Status    string  `json:"status"`
	IsSpecial bool    `json:"is_special"`
}

func NewOpeningHours(day string, start, end *string, status string, special bool) OpeningHours {
	return OpeningHours{Day: day, Start: start, End: end, Status: status, IsSpecial: special}
}

type OpeningHoursFilter struct {
	Day     string
	Special *bool
}

// OrderEvent is published to downstream consumers when an order changes.
type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     int         `json:"order_id"`
	CustomerID  int         `json:"customer_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)
