package schema

import (
	"strings"
	"testing"
	"time"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCustomer = `{
	"firstname": "John", "lastname": "Doe", "email": "john.doe@example.com",
	"phone": "555-555-5555", "special": true, "card_digits": "1234", "external_id": "#1234",
	"street": "123 Elm St", "city": "Springfield", "state": "IL", "zip": "62701", "country": "USA"
}`

func TestDecodeCustomerCreate(t *testing.T) {
	var in CustomerCreate
	require.NoError(t, Decode(strings.NewReader(validCustomer), &in))

	c := in.Customer()
	assert.Equal(t, "John", c.Firstname)
	assert.Equal(t, "#1234", c.ExternalID)
	assert.True(t, c.Special)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "555-555-5555", *c.Phone)
}

func TestDecodeCustomerDefaultsSpecialToFalse(t *testing.T) {
	body := strings.Replace(validCustomer, `"special": true,`, "", 1)
	var in CustomerCreate
	require.NoError(t, Decode(strings.NewReader(body), &in))
	assert.False(t, in.Customer().Special)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		dst    any
		fields map[string]string
	}{
		{
			name:   "invalid email",
			body:   strings.Replace(validCustomer, "john.doe@example.com", "invalid-email", 1),
			dst:    &CustomerCreate{},
			fields: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:   "menu item with empty name and string price",
			body:   `{"name": "", "price": "free", "ingredients": "spaghetti", "category": "Pasta"}`,
			dst:    &MenuItemCreate{},
			fields: map[string]string{"price": "must be a number, got string"},
		},
		{
			name:   "menu item missing fields",
			body:   `{"ingredients": "spaghetti"}`,
			dst:    &MenuItemCreate{},
			fields: map[string]string{"name": "is required", "price": "is required", "category": "is required"},
		},
		{
			name:   "negative price",
			body:   `{"name": "Soup", "price": -1, "category": "Starters"}`,
			dst:    &MenuItemCreate{},
			fields: map[string]string{"price": "must be greater than or equal to 0"},
		},
		{
			name:   "order without items",
			body:   `{"customer_id": 1, "items": []}`,
			dst:    &OrderCreate{},
			fields: map[string]string{"items": "must contain at least 1 item(s)"},
		},
		{
			name:   "order line with zero quantity",
			body:   `{"customer_id": 1, "items": [{"menu_item_id": 2, "quantity": 0}]}`,
			dst:    &OrderCreate{},
			fields: map[string]string{"items[0].quantity": "must be greater than 0"},
		},
		{
			name:   "unknown status",
			body:   `{"status": "lost"}`,
			dst:    &OrderUpdate{},
			fields: map[string]string{"status": "must be one of: pending, in_progress, dispatched, delivered, cancelled"},
		},
		{
			name:   "empty email in patch",
			body:   `{"email": ""}`,
			dst:    &CustomerUpdate{},
			fields: map[string]string{"email": "must be a valid email address"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := Decode(strings.NewReader(testCase.body), testCase.dst)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, testCase.fields, verr.Fields)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, body := range []string{"", "{", "not json"} {
		err := Decode(strings.NewReader(body), &OrderUpdate{})
		assert.ErrorIs(t, err, ErrMalformedBody, body)
	}
}

func TestMenuItemCreateDefaults(t *testing.T) {
	var in MenuItemCreate
	require.NoError(t, Decode(strings.NewReader(
		`{"name": "Spaghetti Carbonara", "price": 12.99, "ingredients": "spaghetti, bacon", "category": "Pasta", "labels": "", "available_monday": true}`,
	), &in))

	item := in.MenuItem()
	assert.Equal(t, 12.99, item.Price)
	assert.True(t, item.Monday)
	assert.False(t, item.Tuesday)
	assert.Equal(t, 1, item.Count())
}

func TestMenuItemUpdatePatch(t *testing.T) {
	var in MenuItemUpdate
	require.NoError(t, Decode(strings.NewReader(`{"price": 13.99, "available_monday": false}`), &in))

	p := in.Patch()
	require.NotNil(t, p.Price)
	assert.Equal(t, 13.99, *p.Price)
	assert.Nil(t, p.Name)
	assert.Equal(t, map[time.Weekday]bool{time.Monday: false}, p.Days)
}

func TestOrderCreateIgnoresClientControlledFields(t *testing.T) {
	var in OrderCreate
	require.NoError(t, Decode(strings.NewReader(`{
		"customer_id": 3, "status": "delivered", "total_amount": 1.0, "order_date": "2023-06-15T12:00:00Z",
		"items": [{"menu_item_id": 1, "quantity": 2, "note": "Extra cheese"}]
	}`), &in))

	order := in.Order()
	assert.Equal(t, 3, order.CustomerID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Zero(t, order.TotalAmount)
	assert.True(t, order.OrderDate.IsZero())
	require.Len(t, order.Items, 1)
	require.NotNil(t, order.Items[0].Note)
	assert.Equal(t, "Extra cheese", *order.Items[0].Note)
}

func TestOrderUpdateTargetStatus(t *testing.T) {
	var empty OrderUpdate
	require.NoError(t, Decode(strings.NewReader(`{}`), &empty))
	_, ok := empty.TargetStatus()
	assert.False(t, ok)

	var in OrderUpdate
	require.NoError(t, Decode(strings.NewReader(`{"status": "delivered"}`), &in))
	status, ok := in.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, domain.StatusDelivered, status)
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"zip": "is required", "city": "is required"}}
	assert.Equal(t, "validation failed: city: is required; zip: is required", err.Error())
}
