package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{input: "monday", want: time.Monday},
		{input: "MONDAY", want: time.Monday},
		{input: " Sunday ", want: time.Sunday},
		{input: "Thursday", want: time.Thursday},
		{input: "funday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			day, err := ParseDay(testCase.input)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, day)
		})
	}
}

func TestAvailability(t *testing.T) {
	all := AllDays()
	assert.Equal(t, 7, all.Count())

	only := OnlyOn(time.Wednesday)
	assert.Equal(t, 1, only.Count())
	assert.True(t, only.On(time.Wednesday))
	assert.False(t, only.On(time.Monday))

	only.Set(time.Friday, true)
	assert.Equal(t, 2, only.Count())

	assert.Equal(t, "available_saturday", DayColumn(time.Saturday))
}

func TestMenuItemJSONFlattensAvailability(t *testing.T) {
	item := NewSpecialMenuItem("Risotto", 14.5, []string{"rice", "mushroom"}, "vegetarian", time.Tuesday)
	item.ID = 3

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Special", decoded["category"])
	assert.Equal(t, "rice, mushroom", decoded["ingredients"])
	assert.Equal(t, true, decoded["available_tuesday"])
	assert.Equal(t, false, decoded["available_monday"])
}

func TestMenuItemInvariants(t *testing.T) {
	regular := NewRegularMenuItem("Soup", 4.5, []string{"water"}, "starters", "")
	assert.NoError(t, regular.CheckInvariants())

	special := NewSpecialMenuItem("Stew", 9, nil, "", time.Monday)
	assert.NoError(t, special.CheckInvariants())

	special.Availability.Set(time.Sunday, true)
	assert.ErrorIs(t, special.CheckInvariants(), ErrInvalidMenuItem)

	regular.Price = -1
	assert.ErrorIs(t, regular.CheckInvariants(), ErrInvalidMenuItem)
}

func TestMenuItemPatchApply(t *testing.T) {
	item := NewRegularMenuItem("Soup", 4.5, []string{"water"}, "starters", "vegan")
	name := "Tomato Soup"
	price := 5.25

	MenuItemPatch{Name: &name, Price: &price, Days: map[time.Weekday]bool{time.Monday: false}}.Apply(&item)

	assert.Equal(t, "Tomato Soup", item.Name)
	assert.Equal(t, 5.25, item.Price)
	assert.Equal(t, "starters", item.Category)
	assert.Equal(t, "vegan", item.Labels)
	assert.False(t, item.Monday)
	assert.True(t, item.Tuesday)
}

func TestCustomerPatchApply(t *testing.T) {
	c := Customer{Firstname: "Penelope", Lastname: "Pitstop", Email: "penny@pitstop.com", City: "Gulch"}
	email := "pen@pitstop.com"
	phone := "555-0100"
	special := true

	CustomerPatch{Email: &email, Phone: &phone, Special: &special}.Apply(&c)

	assert.Equal(t, "Penelope", c.Firstname)
	assert.Equal(t, "pen@pitstop.com", c.Email)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "555-0100", *c.Phone)
	assert.True(t, c.Special)
	assert.Equal(t, "Gulch", c.City)
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []PricedLine
		want  float64
	}{
		{name: "empty", want: 0},
		{name: "single", lines: []PricedLine{{Price: 12.99, Quantity: 1}}, want: 12.99},
		{name: "mixed quantities", lines: []PricedLine{{Price: 12.99, Quantity: 2}, {Price: 8.5, Quantity: 1}}, want: 34.48},
		{name: "float drift", lines: []PricedLine{{Price: 0.1, Quantity: 1}, {Price: 0.2, Quantity: 1}}, want: 0.3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, OrderTotal(testCase.lines))
		})
	}
}

func TestNewOrderIsUTC(t *testing.T) {
	local := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	order := NewOrder(7, local, StatusPending)

	assert.Equal(t, time.UTC, order.OrderDate.Location())
	assert.True(t, order.OrderDate.Equal(local))
	assert.NotNil(t, order.Items)
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDelivered, false},
		{StatusInProgress, StatusDispatched, true},
		{StatusInProgress, StatusPending, false},
		{StatusDispatched, StatusDelivered, true},
		{StatusDispatched, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusDelivered, StatusDelivered, true},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from)+"->"+string(testCase.to), func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.from.CanTransition(testCase.to))
		})
	}

	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusDispatched.Terminal())
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseOrderStatus("lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
