package response

import (
	"stay-admin/internal/domain/booking"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/usecase/commands"
)

type NightLineResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	AccommodationID  string               `json:"accommodationId"`
	Nights           int                  `json:"nights"`
	TotalAmount      float64              `json:"totalAmount"`
	DiscountedAmount float64              `json:"discountedAmount"`
	Discount         float64              `json:"discount"`
	CouponCode       string               `json:"couponCode,omitempty"`
	Available        int                  `json:"available"`
	Lines            []*NightLineResponse `json:"lines" copier:"-"`
}

func FromQuote(q booking.Quote) *QuoteResponse {
	res := &QuoteResponse{}
	copyFrom(res, q)
	res.Discount = q.Discount().Float()
	res.Lines = make([]*NightLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		res.Lines[i] = &NightLineResponse{Date: stay.FormatDate(l.Date), Amount: l.Amount.Float()}
	}
	return res
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	res := FromQuote(r.Quote)
	if r.Context.Accommodation != nil {
		res.AccommodationID = r.Context.Accommodation.ID()
	}
	if r.Context.Coupon != nil {
		res.CouponCode = r.Context.Coupon.Code().String()
	}
	res.Available = r.Stay.Available
	return res
}

type SubmitResponse struct {
	BookingID      string         `json:"bookingId"`
	OwnerName      string         `json:"ownerName,omitempty"`
	OwnerEmail     string         `json:"ownerEmail,omitempty"`
	OwnerPhone     string         `json:"ownerPhone,omitempty"`
	IdempotencyKey string         `json:"idempotencyKey"`
	Quote          *QuoteResponse `json:"quote"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	res := &SubmitResponse{
		IdempotencyKey: r.IdempotencyKey.String(),
		Quote:          FromQuote(r.Quote),
	}
	if r.Confirmation != nil {
		copyFrom(res, r.Confirmation)
	}
	return res
}
