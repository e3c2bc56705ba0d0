package commands

import (
	"context"
	"log/slog"
	"time"

	"stay-admin/internal/domain/booking"
	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/usecase/queries"
	"stay-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	AccommodationID string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          booking.Guests
	Rooms           int
	CouponCode      string
	Contact         booking.Contact
}

type QuoteResult struct {
	Context booking.ComputationContext
	Quote   booking.Quote
	Stay    queries.StayAvailability
}

type SubmitResult struct {
	Confirmation   *booking.Confirmation
	Quote          booking.Quote
	IdempotencyKey uuid.UUID
}

type BookingCommands interface {
	// Quote resolves availability, rates and coupon for the request and
	// prices the stay. It never writes.
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	// Submit re-quotes, validates and sends the offline booking. Validation
	// failures return before any request to the booking endpoint.
	Submit(ctx context.Context, req QuoteRequest, actorID string, idempotencyKey uuid.UUID) (*SubmitResult, error)
}

type bookingUseCaseImpl struct {
	accommodations queries.AccommodationQueries
	availability   queries.AvailabilityQueries
	rates          queries.RateQueries
	coupons        queries.CouponQueries
	writer         shared.BookingWriter
	auditor        *shared.Auditor
	logger         *slog.Logger
}

func NewBookingUseCase(
	accommodations queries.AccommodationQueries,
	availability queries.AvailabilityQueries,
	rates queries.RateQueries,
	coupons queries.CouponQueries,
	writer shared.BookingWriter,
	auditor *shared.Auditor,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		accommodations: accommodations,
		availability:   availability,
		rates:          rates,
		coupons:        coupons,
		writer:         writer,
		auditor:        auditor,
		logger:         logger,
	}
}

func (uc *bookingUseCaseImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	acc, err := uc.accommodations.Get(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}

	var cp *coupon.Coupon
	if req.CouponCode != "" {
		if cp, err = uc.coupons.Apply(ctx, acc, req.CouponCode); err != nil {
			return nil, err
		}
	}

	stayAvail := uc.availability.ResolveStay(ctx, acc, req.CheckIn, req.CheckOut)

	rooms := req.Rooms
	if acc.IsVilla() {
		rooms = 1
	}
	bctx := booking.ComputationContext{
		Accommodation: acc,
		CheckIn:       dayOrZero(req.CheckIn),
		CheckOut:      dayOrZero(req.CheckOut),
		Guests:        req.Guests,
		Rooms:         rooms,
		Coupon:        cp,
		Contact:       req.Contact,
		Available:     stayAvail.Available,
	}
	quote := booking.Compute(bctx, uc.rates.Table(ctx, acc))

	return &QuoteResult{Context: bctx, Quote: quote, Stay: stayAvail}, nil
}

func (uc *bookingUseCaseImpl) Submit(ctx context.Context, req QuoteRequest, actorID string, idempotencyKey uuid.UUID) (*SubmitResult, error) {
	quoted, err := uc.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	submission, err := booking.NewSubmission(quoted.Context, quoted.Quote)
	if err != nil {
		return nil, err
	}

	if idempotencyKey == uuid.Nil {
		idempotencyKey = uuid.New()
	}

	confirmation, err := uc.writer.SubmitOfflineBooking(ctx, submission, idempotencyKey.String())
	entry := shared.AuditEntry{
		Action:          shared.AuditBookingSubmit,
		ActorID:         actorID,
		AccommodationID: submission.AccommodationID,
	}
	if confirmation != nil {
		entry.TargetID = confirmation.BookingID
	}
	uc.auditor.Record(ctx, entry, submissionAudit(submission, idempotencyKey), err)

	if err != nil {
		uc.logger.Error("offline booking submission failed",
			"accommodation_id", submission.AccommodationID,
			"idempotency_key", idempotencyKey,
			"error", err)
		return nil, errs.Mark(err, ErrUpstreamWrite)
	}

	return &SubmitResult{
		Confirmation:   confirmation,
		Quote:          quoted.Quote,
		IdempotencyKey: idempotencyKey,
	}, nil
}

func dayOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return stay.Day(t)
}

type submissionPayload struct {
	IdempotencyKey   string  `json:"idempotency_key"`
	GuestEmail       string  `json:"guest_email"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	Rooms            int     `json:"rooms"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	ExtraAdults      int     `json:"extra_adults"`
	TotalAmount      float64 `json:"total_amount"`
	DiscountedAmount float64 `json:"discounted_amount"`
	CouponCode       string  `json:"coupon_code,omitempty"`
}

func submissionAudit(s booking.Submission, key uuid.UUID) submissionPayload {
	return submissionPayload{
		IdempotencyKey:   key.String(),
		GuestEmail:       s.Contact.Email,
		CheckIn:          stay.FormatDate(s.CheckIn),
		CheckOut:         stay.FormatDate(s.CheckOut),
		Rooms:            s.Rooms,
		Adults:           s.Guests.Adults,
		Children:         s.Guests.Children,
		ExtraAdults:      s.Guests.ExtraAdults,
		TotalAmount:      s.TotalAmount.Float(),
		DiscountedAmount: s.DiscountedAmount.Float(),
		CouponCode:       s.CouponCode,
	}
}
