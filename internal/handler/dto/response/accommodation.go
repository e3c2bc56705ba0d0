package response

import (
	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/coupon"
)

type AccommodationResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	IsVilla         bool    `json:"isVilla"`
	Rooms           int     `json:"rooms"`
	Capacity        int     `json:"capacity"`
	Address         string  `json:"address"`
	OwnerID         string  `json:"ownerId"`
	AdultPrice      float64 `json:"adultPrice"`
	ChildPrice      float64 `json:"childPrice"`
	MaxPersonsVilla *int    `json:"maxPersonsVilla,omitempty"`
	ExtraPersonRate float64 `json:"extraPersonRate"`
}

func FromAccommodation(a *accommodation.Accommodation) *AccommodationResponse {
	res := &AccommodationResponse{}
	copyFrom(res, a)
	// getters returning money are not converted by copier
	res.AdultPrice = a.AdultPrice().Float()
	res.ChildPrice = a.ChildPrice().Float()
	res.ExtraPersonRate = a.ExtraPersonRate().Float()
	return res
}

func FromAccommodations(list []*accommodation.Accommodation) []*AccommodationResponse {
	res := make([]*AccommodationResponse, len(list))
	for i, a := range list {
		res[i] = FromAccommodation(a)
	}
	return res
}

type CouponResponse struct {
	Code              string   `json:"code"`
	DiscountType      string   `json:"discountType"`
	Discount          float64  `json:"discount"`
	MaxDiscount       *float64 `json:"maxDiscount,omitempty"`
	MinAmount         float64  `json:"minAmount"`
	IsActive          bool     `json:"active"`
	AccommodationType *string  `json:"accommodationType"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	d := c.Discount()
	res := &CouponResponse{
		Code:              c.Code().String(),
		DiscountType:      string(d.Kind()),
		MinAmount:         c.MinAmount().Float(),
		IsActive:          c.IsActive(),
		AccommodationType: c.AccommodationType(),
	}
	if d.IsPercentage() {
		res.Discount = d.PercentOff()
		if m := d.MaxDiscount(); m != nil {
			v := m.Float()
			res.MaxDiscount = &v
		}
	} else {
		res.Discount = d.AmountOff().Float()
	}
	return res
}

func FromCoupons(list []*coupon.Coupon) []*CouponResponse {
	res := make([]*CouponResponse, len(list))
	for i, c := range list {
		res[i] = FromCoupon(c)
	}
	return res
}
