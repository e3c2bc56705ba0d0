package request

import "strings"

type FoodPreference struct {
	Veg    int `json:"veg" binding:"min=0"`
	NonVeg int `json:"nonVeg" binding:"min=0"`
	Jain   int `json:"jain" binding:"min=0"`
}

// QuoteRequest is the booking form. Dates are "2006-01-02"; a missing or
// unparseable date prices as zero nights rather than failing.
type QuoteRequest struct {
	AccommodationID string         `json:"accommodationId" binding:"required"`
	CheckIn         string         `json:"checkIn"`
	CheckOut        string         `json:"checkOut"`
	Adults          int            `json:"adults" binding:"min=0,max=500"`
	Children        int            `json:"children" binding:"min=0,max=500"`
	ExtraAdults     int            `json:"extraAdults" binding:"min=0,max=500"`
	Rooms           int            `json:"rooms" binding:"min=0,max=500"`
	FoodPreference  FoodPreference `json:"foodPreference"`
	CouponCode      string         `json:"couponCode"`
	GuestName       string         `json:"guestName"`
	Email           string         `json:"email" binding:"omitempty,email"`
	Phone           string         `json:"phone"`
}

func (r QuoteRequest) TrimmedCouponCode() string {
	return strings.TrimSpace(r.CouponCode)
}
