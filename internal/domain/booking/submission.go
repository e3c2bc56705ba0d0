package booking

import (
	"time"

	"stay-admin/internal/pkg/money"
)

// Submission is an offline booking ready to be sent to the backend.
type Submission struct {
	AccommodationID   string
	AccommodationName string
	Contact           Contact
	CheckIn           time.Time
	CheckOut          time.Time
	Guests            Guests
	Rooms             int
	Nights            int
	TotalAmount       money.Money
	DiscountedAmount  money.Money
	CouponCode        string
}

// NewSubmission validates the context against its quote and freezes both
// into a submission. Nothing is built when validation fails.
func NewSubmission(ctx ComputationContext, q Quote) (Submission, error) {
	if err := Validate(ctx, q); err != nil {
		return Submission{}, err
	}
	s := Submission{
		AccommodationID:   ctx.Accommodation.ID(),
		AccommodationName: ctx.Accommodation.Name(),
		Contact:           ctx.Contact,
		CheckIn:           ctx.CheckIn,
		CheckOut:          ctx.CheckOut,
		Guests:            ctx.Guests,
		Rooms:             ctx.Rooms,
		Nights:            q.Nights,
		TotalAmount:       q.TotalAmount,
		DiscountedAmount:  q.DiscountedAmount,
	}
	if ctx.IsVilla() {
		s.Rooms = 1
	}
	if ctx.Coupon != nil {
		s.CouponCode = ctx.Coupon.Code().String()
	}
	return s, nil
}

// Confirmation is the backend's answer to a submitted booking.
type Confirmation struct {
	BookingID  string
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
}
