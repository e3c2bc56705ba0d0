package coupon

import (
	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/pkg/money"
)

// AllAccommodations is the accommodationType value that makes a coupon universal.
const AllAccommodations = "All"

type Coupon struct {
	id                string
	code              Code
	discount          Discount
	minAmount         money.Money
	active            bool
	accommodationType *string
}

type Params struct {
	ID                string
	Code              string
	DiscountType      string
	Discount          float64
	MinAmount         *float64
	MaxDiscount       *float64
	Active            bool
	AccommodationType *string
}

func NewCoupon(p Params) (*Coupon, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return nil, err
	}

	kind, err := NewDiscountType(p.DiscountType)
	if err != nil {
		return nil, err
	}

	var discount Discount
	switch kind {
	case DiscountPercentage:
		var maxDiscount *money.Money
		if p.MaxDiscount != nil {
			m := money.FromFloat(*p.MaxDiscount)
			maxDiscount = &m
		}
		discount, err = NewPercentageDiscount(p.Discount, maxDiscount)
	case DiscountFixed:
		discount, err = NewFixedDiscount(money.FromFloat(p.Discount))
	}
	if err != nil {
		return nil, err
	}

	minAmount := money.Zero
	if p.MinAmount != nil {
		minAmount = money.FromFloat(*p.MinAmount)
	}

	return &Coupon{
		id:                p.ID,
		code:              code,
		discount:          discount,
		minAmount:         minAmount,
		active:            p.Active,
		accommodationType: p.AccommodationType,
	}, nil
}

// ApplyDiscount returns base reduced by the coupon, never below zero. Below
// minAmount the coupon silently does not apply.
func (c *Coupon) ApplyDiscount(base money.Money) money.Money {
	if base.LessThan(c.minAmount) {
		return base
	}
	return base.Sub(c.discount.Amount(base)).ClampZero()
}

// IsEligibleFor compares accommodationType against the accommodation's display
// name, not its type. Coupons in the backend are keyed by property name.
func (c *Coupon) IsEligibleFor(acc *accommodation.Accommodation) bool {
	if !c.active || acc == nil {
		return false
	}
	if c.accommodationType == nil {
		return true
	}
	target := *c.accommodationType
	return target == AllAccommodations || target == acc.Name()
}

func (c *Coupon) ID() string                 { return c.id }
func (c *Coupon) Code() Code                 { return c.code }
func (c *Coupon) Discount() Discount         { return c.discount }
func (c *Coupon) MinAmount() money.Money     { return c.minAmount }
func (c *Coupon) IsActive() bool             { return c.active }
func (c *Coupon) AccommodationType() *string { return c.accommodationType }
