package booking

import (
	"time"

	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/domain/pricing"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/money"
)

type RateSource interface {
	At(date time.Time) pricing.Rate
}

type NightLine struct {
	Date   time.Time
	Amount money.Money
}

type Quote struct {
	Nights           int
	TotalAmount      money.Money
	DiscountedAmount money.Money
	Lines            []NightLine
}

func (q Quote) Discount() money.Money {
	return q.TotalAmount.Sub(q.DiscountedAmount)
}

// Compute prices the stay night by night. Invalid or missing dates yield a
// zero quote.
func Compute(ctx ComputationContext, rates RateSource) Quote {
	nights := ctx.Nights()
	if nights == 0 || ctx.Accommodation == nil {
		return Quote{}
	}

	q := Quote{Nights: nights, Lines: make([]NightLine, 0, nights)}
	for date := range stay.EnumerateDates(stay.Day(ctx.CheckIn), stay.Day(ctx.CheckOut)) {
		amount := nightly(ctx, rates.At(date))
		q.Lines = append(q.Lines, NightLine{Date: date, Amount: amount})
		q.TotalAmount = q.TotalAmount.Add(amount)
	}
	q.DiscountedAmount = coupon.ApplyDiscount(q.TotalAmount, ctx.Coupon)
	return q
}

func nightly(ctx ComputationContext, rate pricing.Rate) money.Money {
	if ctx.IsVilla() {
		// children are included in the villa rate
		extra := ctx.Accommodation.ExtraPersonRate().Mul(ctx.Guests.ExtraAdults)
		return rate.Adult.Add(extra)
	}
	return rate.Adult.Mul(ctx.Guests.Adults).Add(rate.Child.Mul(ctx.Guests.Children))
}
