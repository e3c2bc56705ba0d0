package coupon

import (
	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/pkg/money"
)

// ApplyDiscount is the nil-tolerant form used by the price calculator.
func ApplyDiscount(base money.Money, c *Coupon) money.Money {
	if c == nil {
		return base
	}
	return c.ApplyDiscount(base)
}

func FilterEligible(coupons []*Coupon, acc *accommodation.Accommodation) []*Coupon {
	eligible := make([]*Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.IsEligibleFor(acc) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

func FindByCode(coupons []*Coupon, code string) (*Coupon, bool) {
	for _, c := range coupons {
		if c.Code().Matches(code) {
			return c, true
		}
	}
	return nil, false
}
