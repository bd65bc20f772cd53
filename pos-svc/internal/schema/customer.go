package schema

import "restaurant-pos/pos-svc/internal/domain"

type CustomerCreate struct {
	Firstname  string  `json:"firstname" validate:"required"`
	Lastname   string  `json:"lastname" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone"`
	Special    *bool   `json:"special"`
	CardDigits string  `json:"card_digits" validate:"required"`
	ExternalID string  `json:"external_id" validate:"required"`
	Street     string  `json:"street" validate:"required"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state" validate:"required"`
	Zip        string  `json:"zip" validate:"required"`
	Country    string  `json:"country" validate:"required"`
}

func (in CustomerCreate) Customer() domain.Customer {
	c := domain.Customer{
		Firstname:  in.Firstname,
		Lastname:   in.Lastname,
		Email:      in.Email,
		ExternalID: in.ExternalID,
		CardDigits: in.CardDigits,
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		Zip:        in.Zip,
		Country:    in.Country,
		Phone:      in.Phone,
	}
	if in.Special != nil {
		c.Special = *in.Special
	}
	return c
}

// CustomerUpdate has no external_id: it is fixed once assigned.
type CustomerUpdate struct {
	Firstname  *string `json:"firstname" validate:"omitnil,min=1"`
	Lastname   *string `json:"lastname" validate:"omitnil,min=1"`
	Email      *string `json:"email" validate:"omitnil,email"`
	Phone      *string `json:"phone"`
	Special    *bool   `json:"special"`
	CardDigits *string `json:"card_digits"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Zip        *string `json:"zip"`
	Country    *string `json:"country"`
}

func (in CustomerUpdate) Patch() domain.CustomerPatch {
	return domain.CustomerPatch{
		Firstname:  in.Firstname,
		Lastname:   in.Lastname,
		Email:      in.Email,
		Phone:      in.Phone,
		Special:    in.Special,
		CardDigits: in.CardDigits,
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		Zip:        in.Zip,
		Country:    in.Country,
	}
}
