//go:build unit || e2e

package builder

import (
	"time"

	"stay-admin/internal/domain/booking"
	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/domain/stay"
	reqdto "stay-admin/internal/handler/dto/request"
)

type BookingBuilder struct {
	Accommodation *AccommodationBuilder
	Coupon        *CouponBuilder
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	ExtraAdults   int
	Veg           int
	NonVeg        int
	Jain          int
	Rooms         int
	Available     int
	GuestName     string
	Email         string
	Phone         string
}

// NewBookingBuilder defaults to a valid 3 night standard stay for 2 adults and 1 child.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Accommodation: NewAccommodationBuilder(),
		CheckIn:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		Children:      1,
		Veg:           2,
		NonVeg:        1,
		Rooms:         2,
		Available:     3,
		GuestName:     "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "+91 98450 00000",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Nights(n int) *BookingBuilder {
	b.CheckOut = b.CheckIn.AddDate(0, 0, n)
	return b
}

func (b *BookingBuilder) WithCoupon(c *CouponBuilder) *BookingBuilder {
	b.Coupon = c
	return b
}

// AsVilla books the villa variant of the accommodation; food preferences are not required.
func (b *BookingBuilder) AsVilla(rate, extraPersonRate float64, capacity int) *BookingBuilder {
	b.Accommodation.AsVilla(rate, extraPersonRate, capacity)
	b.Rooms = 1
	b.Available = 1
	b.Veg, b.NonVeg, b.Jain = 0, 0, 0
	return b
}

// Build methods
func (b *BookingBuilder) BuildContext() (booking.ComputationContext, error) {
	acc, err := b.Accommodation.BuildDomain()
	if err != nil {
		return booking.ComputationContext{}, err
	}
	var cp *coupon.Coupon
	if b.Coupon != nil {
		if cp, err = b.Coupon.BuildDomain(); err != nil {
			return booking.ComputationContext{}, err
		}
	}
	return booking.ComputationContext{
		Accommodation: acc,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests: booking.Guests{
			Adults:      b.Adults,
			Children:    b.Children,
			ExtraAdults: b.ExtraAdults,
			Veg:         b.Veg,
			NonVeg:      b.NonVeg,
			Jain:        b.Jain,
		},
		Rooms:     b.Rooms,
		Coupon:    cp,
		Contact:   booking.Contact{Name: b.GuestName, Email: b.Email, Phone: b.Phone},
		Available: b.Available,
	}, nil
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	req := reqdto.QuoteRequest{
		AccommodationID: b.Accommodation.ID,
		CheckIn:         stay.FormatDate(b.CheckIn),
		CheckOut:        stay.FormatDate(b.CheckOut),
		Adults:          b.Adults,
		Children:        b.Children,
		ExtraAdults:     b.ExtraAdults,
		Rooms:           b.Rooms,
		FoodPreference: reqdto.FoodPreference{
			Veg:    b.Veg,
			NonVeg: b.NonVeg,
			Jain:   b.Jain,
		},
		GuestName: b.GuestName,
		Email:     b.Email,
		Phone:     b.Phone,
	}
	if b.Coupon != nil {
		req.CouponCode = b.Coupon.Code
	}
	return req
}
