package coupon

import (
	"errors"
	"strings"

	"stay-admin/internal/pkg/money"
)

var (
	ErrInvalidCouponCode      = errors.New("coupon code cannot be empty")
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

// Code is compared case-insensitively; the original casing is kept for display.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) Matches(input string) bool {
	return strings.EqualFold(string(c), strings.TrimSpace(input))
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToLower(strings.TrimSpace(s))) {
	case DiscountPercentage:
		return DiscountPercentage, nil
	case DiscountFixed:
		return DiscountFixed, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

type Discount struct {
	kind        DiscountType
	percentOff  float64
	amountOff   money.Money
	maxDiscount *money.Money
}

func NewPercentageDiscount(percentOff float64, maxDiscount *money.Money) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if maxDiscount != nil && maxDiscount.LessThan(money.Zero) {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountPercentage, percentOff: percentOff, maxDiscount: maxDiscount}, nil
}

func NewFixedDiscount(amountOff money.Money) (Discount, error) {
	if amountOff.LessThan(money.Zero) {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, amountOff: amountOff}, nil
}

func (d Discount) Kind() DiscountType        { return d.kind }
func (d Discount) IsPercentage() bool        { return d.kind == DiscountPercentage }
func (d Discount) PercentOff() float64       { return d.percentOff }
func (d Discount) AmountOff() money.Money    { return d.amountOff }
func (d Discount) MaxDiscount() *money.Money { return d.maxDiscount }

// Amount is the reduction applied to base. A percentage reduction is capped by
// maxDiscount when one is set; a fixed reduction is returned as-is and the
// caller clamps the result.
func (d Discount) Amount(base money.Money) money.Money {
	if d.IsPercentage() {
		raw := base.Percent(d.percentOff)
		if d.maxDiscount != nil {
			return money.Min(raw, *d.maxDiscount)
		}
		return raw
	}
	return d.amountOff
}
