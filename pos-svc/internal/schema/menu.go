package schema

import (
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

// MenuItemCreate is the body of POST /api/menu-items. Day flags default to false.
type MenuItemCreate struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Ingredients string   `json:"ingredients"`
	Category    string   `json:"category" validate:"required"`
	Labels      *string  `json:"labels"`
	domain.Availability
}

func (in MenuItemCreate) MenuItem() domain.MenuItem {
	item := domain.MenuItem{
		Name:         in.Name,
		Price:        *in.Price,
		Ingredients:  in.Ingredients,
		Category:     in.Category,
		Availability: in.Availability,
	}
	if in.Labels != nil {
		item.Labels = *in.Labels
	}
	return item
}

// MenuItemUpdate is the body of PATCH /api/menu-items/{id}.
type MenuItemUpdate struct {
	Name               *string  `json:"name" validate:"omitnil,min=1,max=200"`
	Price              *float64 `json:"price" validate:"omitnil,gte=0"`
	Ingredients        *string  `json:"ingredients"`
	Category           *string  `json:"category" validate:"omitnil,min=1"`
	Labels             *string  `json:"labels"`
	AvailableMonday    *bool    `json:"available_monday"`
	AvailableTuesday   *bool    `json:"available_tuesday"`
	AvailableWednesday *bool    `json:"available_wednesday"`
	AvailableThursday  *bool    `json:"available_thursday"`
	AvailableFriday    *bool    `json:"available_friday"`
	AvailableSaturday  *bool    `json:"available_saturday"`
	AvailableSunday    *bool    `json:"available_sunday"`
}

func (in MenuItemUpdate) Patch() domain.MenuItemPatch {
	p := domain.MenuItemPatch{
		Name:        in.Name,
		Price:       in.Price,
		Ingredients: in.Ingredients,
		Category:    in.Category,
		Labels:      in.Labels,
		Days:        map[time.Weekday]bool{},
	}
	for day, flag := range map[time.Weekday]*bool{
		time.Monday:    in.AvailableMonday,
		time.Tuesday:   in.AvailableTuesday,
		time.Wednesday: in.AvailableWednesday,
		time.Thursday:  in.AvailableThursday,
		time.Friday:    in.AvailableFriday,
		time.Saturday:  in.AvailableSaturday,
		time.Sunday:    in.AvailableSunday,
	} {
		if flag != nil {
			p.Days[day] = *flag
		}
	}
	return p
}
