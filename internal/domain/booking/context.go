package booking

import (
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/domain/stay"
)

type Guests struct {
	Adults   int
	Children int
	// ExtraAdults are villa guests beyond capacity, charged the extra person rate.
	ExtraAdults int

	Veg    int
	NonVeg int
	Jain   int
}

// Base is the guest count covered by the room or villa price.
func (g Guests) Base() int {
	return g.Adults + g.Children
}

func (g Guests) FoodTotal() int {
	return g.Veg + g.NonVeg + g.Jain
}

type Contact struct {
	Name  string
	Email string
	Phone string
}

// ComputationContext is every input a quote depends on. Each change in the
// booking form builds a fresh value; nothing is mutated in place.
type ComputationContext struct {
	Accommodation *accommodation.Accommodation
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        Guests
	Rooms         int
	Coupon        *coupon.Coupon
	Contact       Contact
	// Available is the resolved room availability for the stay.
	Available int
}

// Nights counts calendar days, ignoring the time of day on either date.
func (c ComputationContext) Nights() int {
	return stay.NightsBetween(stay.Day(c.CheckIn), stay.Day(c.CheckOut))
}

func (c ComputationContext) IsVilla() bool {
	return c.Accommodation != nil && c.Accommodation.IsVilla()
}
