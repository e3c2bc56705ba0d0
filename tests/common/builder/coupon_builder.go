//go:build unit || e2e

package builder

import (
	"stay-admin/internal/domain/coupon"
)

type CouponBuilder struct {
	ID                string
	Code              string
	DiscountType      string
	Discount          float64
	MinAmount         *float64
	MaxDiscount       *float64
	Active            bool
	AccommodationType *string
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:           "coupon-1",
		Code:         "WELCOME10",
		DiscountType: string(coupon.DiscountPercentage),
		Discount:     10,
		Active:       true,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) WithCode(code string) *CouponBuilder {
	c.Code = code
	return c
}

func (c *CouponBuilder) Percentage(pct float64) *CouponBuilder {
	c.DiscountType = string(coupon.DiscountPercentage)
	c.Discount = pct
	return c
}

func (c *CouponBuilder) Fixed(amount float64) *CouponBuilder {
	c.DiscountType = string(coupon.DiscountFixed)
	c.Discount = amount
	return c
}

func (c *CouponBuilder) WithMaxDiscount(v float64) *CouponBuilder {
	c.MaxDiscount = &v
	return c
}

func (c *CouponBuilder) WithMinAmount(v float64) *CouponBuilder {
	c.MinAmount = &v
	return c
}

func (c *CouponBuilder) ForAccommodation(name string) *CouponBuilder {
	c.AccommodationType = &name
	return c
}

// Build methods
func (c *CouponBuilder) BuildParams() coupon.Params {
	return coupon.Params{
		ID:                c.ID,
		Code:              c.Code,
		DiscountType:      c.DiscountType,
		Discount:          c.Discount,
		MinAmount:         c.MinAmount,
		MaxDiscount:       c.MaxDiscount,
		Active:            c.Active,
		AccommodationType: c.AccommodationType,
	}
}

func (c *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(c.BuildParams())
}
