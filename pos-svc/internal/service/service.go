package service

import (
	"context"
	"errors"
	"fmt"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/storage"
)

var (
	ErrInvalidDay        = errors.New("invalid day")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateCustomer = errors.New("customer with this email or external_id already exists")
	ErrOrderInFlight     = errors.New("an order with this idempotency key is still being created")
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, f)
}

func (s *MenuService) ForDay(ctx context.Context, day string) ([]domain.MenuItem, error) {
	weekday, err := domain.ParseDay(day)
	if err != nil {
		return nil, ErrInvalidDay
	}
	return s.repo.ListMenuItemsByDay(ctx, weekday)
}

func (s *MenuService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := item.CheckInvariants(); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) Update(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	return s.repo.UpdateMenuItem(ctx, id, func(item *domain.MenuItem) error {
		patch.Apply(item)
		return item.CheckInvariants()
	})
}

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx, f)
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) error {
	return duplicateCustomer(s.repo.CreateCustomer(ctx, c))
}

func (s *CustomerService) Update(ctx context.Context, id int, patch domain.CustomerPatch) (*domain.Customer, error) {
	c, err := s.repo.UpdateCustomer(ctx, id, func(c *domain.Customer) error {
		patch.Apply(c)
		return nil
	})
	return c, duplicateCustomer(err)
}

func duplicateCustomer(err error) error {
	if errors.Is(err, storage.ErrUniqueViolation) {
		return fmt.Errorf("%w: %v", ErrDuplicateCustomer, err)
	}
	return err
}

type OpeningHoursService struct {
	repo OpeningHoursRepository
}

func NewOpeningHoursService(repo OpeningHoursRepository) *OpeningHoursService {
	return &OpeningHoursService{repo: repo}
}

// Query returns the matching hours, or ErrOpeningHoursNotFound when none match.
func (s *OpeningHoursService) Query(ctx context.Context, f domain.OpeningHoursFilter) ([]domain.OpeningHours, error) {
	hours, err := s.repo.ListOpeningHours(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		return nil, domain.ErrOpeningHoursNotFound
	}
	return hours, nil
}

func (s *OpeningHoursService) ForDay(ctx context.Context, day string) ([]domain.OpeningHours, error) {
	return s.Query(ctx, domain.OpeningHoursFilter{Day: day})
}

// Special lists VIP hours; an empty list is not an error.
func (s *OpeningHoursService) Special(ctx context.Context) ([]domain.OpeningHours, error) {
	special := true
	return s.repo.ListOpeningHours(ctx, domain.OpeningHoursFilter{Special: &special})
}
