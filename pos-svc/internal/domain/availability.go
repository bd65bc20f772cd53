package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownDay = errors.New("unknown day")

// Availability holds the seven per-weekday ordering flags of a menu item.
type Availability struct {
	Monday    bool `json:"available_monday"`
	Tuesday   bool `json:"available_tuesday"`
	Wednesday bool `json:"available_wednesday"`
	Thursday  bool `json:"available_thursday"`
	Friday    bool `json:"available_friday"`
	Saturday  bool `json:"available_saturday"`
	Sunday    bool `json:"available_sunday"`
}

var dayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseDay maps a day name to its weekday, ignoring case and surrounding space.
func ParseDay(name string) (time.Weekday, error) {
	day, ok := dayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrUnknownDay
	}
	return day, nil
}

func AllDays() Availability {
	return Availability{true, true, true, true, true, true, true}
}

func OnlyOn(day time.Weekday) Availability {
	var a Availability
	a.Set(day, true)
	return a
}

func (a *Availability) flag(day time.Weekday) *bool {
	switch day {
	case time.Monday:
		return &a.Monday
	case time.Tuesday:
		return &a.Tuesday
	case time.Wednesday:
		return &a.Wednesday
	case time.Thursday:
		return &a.Thursday
	case time.Friday:
		return &a.Friday
	case time.Saturday:
		return &a.Saturday
	default:
		return &a.Sunday
	}
}

func (a *Availability) Set(day time.Weekday, on bool) {
	*a.flag(day) = on
}

func (a Availability) On(day time.Weekday) bool {
	return *a.flag(day)
}

func (a Availability) Count() int {
	n := 0
	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		if a.On(day) {
			n++
		}
	}
	return n
}

// DayColumn is the menu_items column holding the flag for day.
func DayColumn(day time.Weekday) string {
	return "available_" + strings.ToLower(day.String())
}
