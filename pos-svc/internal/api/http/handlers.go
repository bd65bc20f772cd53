package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/schema"
	"restaurant-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	IdempotencyKeyHeader   = "Idempotency-Key"
	IdempotentReplayHeader = "Idempotent-Replay"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	ServiceName  string
	Menu         service.MenuServiceInterface
	Customers    service.CustomerServiceInterface
	Orders       service.OrderServiceInterface
	OpeningHours service.OpeningHoursServiceInterface
	Health       HealthChecker
	Log          *slog.Logger
}

func NewHandler(
	serviceName string,
	menu service.MenuServiceInterface,
	customers service.CustomerServiceInterface,
	orders service.OrderServiceInterface,
	hours service.OpeningHoursServiceInterface,
	health HealthChecker,
	log *slog.Logger,
) *Handler {
	return &Handler{
		ServiceName:  serviceName,
		Menu:         menu,
		Customers:    customers,
		Orders:       orders,
		OpeningHours: hours,
		Health:       health,
		Log:          log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/customers", h.listCustomers).Methods("GET")
	r.HandleFunc("/api/customers", h.createCustomer).Methods("POST")
	r.HandleFunc("/api/customers/{id}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.updateCustomer).Methods("PATCH")

	r.HandleFunc("/api/menu-items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.updateMenuItem).Methods("PATCH")
	r.HandleFunc("/api/menu/{day}", h.menuForDay).Methods("GET")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrder).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders_by_user/{customer_id}", h.ordersByUser).Methods("GET")

	r.HandleFunc("/api/opening_hours", h.queryOpeningHours).Methods("GET")
	r.HandleFunc("/api/opening_hours/{day}", h.openingHoursByDay).Methods("GET")
	r.HandleFunc("/api/special_opening_hours", h.specialOpeningHours).Methods("GET")
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service and domain errors to HTTP responses.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr    *schema.ValidationError
		missing *domain.MenuItemMissingError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "Validation failed", Fields: verr.Fields})
	case errors.Is(err, schema.ErrMalformedBody):
		writeError(w, http.StatusBadRequest, "Malformed request body")
	case errors.Is(err, service.ErrInvalidDay):
		writeError(w, http.StatusBadRequest, "Invalid day")
	case errors.Is(err, domain.ErrInvalidMenuItem):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &missing):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Menu item with id %d not found", missing.ID))
	case errors.Is(err, domain.ErrMenuItemNotFound):
		writeError(w, http.StatusNotFound, "Menu item not found")
	case errors.Is(err, domain.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrNoOrdersForCustomer):
		writeError(w, http.StatusNotFound, "No orders found for this user")
	case errors.Is(err, domain.ErrOpeningHoursNotFound):
		writeError(w, http.StatusNotFound, "No opening hours found")
	case errors.Is(err, service.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrDuplicateCustomer):
		writeError(w, http.StatusConflict, "Customer with this email or external_id already exists")
	case errors.Is(err, service.ErrOrderInFlight):
		writeError(w, http.StatusConflict, "Order with this idempotency key is still being created")
	default:
		h.Log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	return id, err == nil && id > 0
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   h.ServiceName,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	status := http.StatusOK
	if h.Health != nil {
		if err := h.Health.Ping(r.Context()); err != nil {
			response["status"] = "unhealthy"
			response["error"] = err.Error()
			status = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, status, response)
}

// Customers

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	customers, err := h.Customers.List(r.Context(), domain.CustomerFilter{
		Firstname:  q.Get("firstname"),
		Lastname:   q.Get("lastname"),
		Email:      q.Get("email"),
		ExternalID: q.Get("external_id"),
		Phone:      q.Get("phone"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	customer, err := h.Customers.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var in schema.CustomerCreate
	if err := schema.Decode(r.Body, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	customer := in.Customer()
	if err := h.Customers.Create(r.Context(), &customer); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	var in schema.CustomerUpdate
	if err := schema.Decode(r.Body, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	customer, err := h.Customers.Update(r.Context(), id, in.Patch())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Menu items

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Menu.List(r.Context(), domain.MenuItemFilter{
		Name:        q.Get("name"),
		Category:    q.Get("category"),
		Labels:      q.Get("labels"),
		Ingredients: q.Get("ingredients"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid menu item id")
		return
	}
	item, err := h.Menu.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) menuForDay(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ForDay(r.Context(), mux.Vars(r)["day"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var in schema.MenuItemCreate
	if err := schema.Decode(r.Body, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	item := in.MenuItem()
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid menu item id")
		return
	}
	var in schema.MenuItemUpdate
	if err := schema.Decode(r.Body, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	item, err := h.Menu.Update(r.Context(), id, in.Patch())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Orders

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	png, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) ordersByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "customer_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}
	orders, err := h.Orders.ListByCustomer(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in schema.OrderCreate
	if err := schema.Decode(r.Body, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	order, created, err := h.Orders.Create(r.Context(), in.Order(), r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !created {
		w.Header().Set(IdempotentReplayHeader, "true")
		writeJSON(w, http.StatusOK, order)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var in schema.OrderUpdate
	if err := schema.Decode(r.Body, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	var target *domain.OrderStatus
	if status, ok := in.TargetStatus(); ok {
		target = &status
	}
	order, err := h.Orders.UpdateStatus(r.Context(), id, target)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Opening hours

func (h *Handler) queryOpeningHours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OpeningHoursFilter{Day: q.Get("day")}
	if raw := q.Get("special"); raw != "" {
		special, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid special filter")
			return
		}
		filter.Special = &special
	}
	hours, err := h.OpeningHours.Query(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (h *Handler) openingHoursByDay(w http.ResponseWriter, r *http.Request) {
	hours, err := h.OpeningHours.ForDay(r.Context(), mux.Vars(r)["day"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (h *Handler) specialOpeningHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.OpeningHours.Special(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}
