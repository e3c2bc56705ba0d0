package shared

import (
	"context"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/booking"
	"stay-admin/internal/domain/coupon"
)

// Read side of the remote admin backend.

type AccommodationReader interface {
	ListAccommodations(ctx context.Context) ([]*accommodation.Accommodation, error)
	GetAccommodation(ctx context.Context, id string) (*accommodation.Accommodation, error)
}

type CouponReader interface {
	ListCoupons(ctx context.Context) ([]*coupon.Coupon, error)
}

type OccupancyReader interface {
	// BookedRooms is the number of rooms already booked for the night of date.
	BookedRooms(ctx context.Context, accommodationID string, date time.Time) (int, error)
}

type BlockedDateReader interface {
	ListBlockedDates(ctx context.Context) ([]*blockeddate.Record, error)
}

// Write side. Writes are never retried.

type BlockedDateWriter interface {
	CreateBlockedDate(ctx context.Context, body blockeddate.Body) (string, error)
	UpdateBlockedDate(ctx context.Context, id string, body blockeddate.Body) error
	DeleteBlockedDate(ctx context.Context, id string) error
}

type BookingWriter interface {
	SubmitOfflineBooking(ctx context.Context, s booking.Submission, idempotencyKey string) (*booking.Confirmation, error)
}

// Cache stores raw backend responses for slow-changing reads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
