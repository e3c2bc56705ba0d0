package blockeddate

import (
	"errors"
	"strings"
	"time"

	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/money"
)

var (
	ErrEmptyAccommodation = errors.New("blocked date requires an accommodation")
	ErrMissingDate        = errors.New("blocked date requires a date")
)

// Kind is the effect a record has on a calendar day.
type Kind string

const (
	KindFullBlock Kind = "full_block"
	KindPartial   Kind = "partial"
	KindPriceOnly Kind = "price_only"
)

type Record struct {
	id              string
	accommodationID string
	date            time.Time
	rooms           Rooms
	reason          *string
	adultPrice      *money.Money
	childPrice      *money.Money
	createdAt       time.Time
	updatedAt       time.Time
}

type Params struct {
	ID              string
	AccommodationID string
	Date            time.Time
	Rooms           Rooms
	Reason          *string
	AdultPrice      *money.Money
	ChildPrice      *money.Money
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewRecord(p Params) (*Record, error) {
	accID := strings.TrimSpace(p.AccommodationID)
	if accID == "" {
		return nil, ErrEmptyAccommodation
	}
	if p.Date.IsZero() {
		return nil, ErrMissingDate
	}
	var reason *string
	if p.Reason != nil && strings.TrimSpace(*p.Reason) != "" {
		r := strings.TrimSpace(*p.Reason)
		reason = &r
	}
	return &Record{
		id:              p.ID,
		accommodationID: accID,
		date:            stay.Day(p.Date),
		rooms:           p.Rooms,
		reason:          reason,
		adultPrice:      p.AdultPrice,
		childPrice:      p.ChildPrice,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (r *Record) ID() string               { return r.id }
func (r *Record) AccommodationID() string  { return r.accommodationID }
func (r *Record) Date() time.Time          { return r.date }
func (r *Record) Rooms() Rooms             { return r.rooms }
func (r *Record) Reason() *string          { return r.reason }
func (r *Record) AdultPrice() *money.Money { return r.adultPrice }
func (r *Record) ChildPrice() *money.Money { return r.childPrice }
func (r *Record) CreatedAt() time.Time     { return r.createdAt }
func (r *Record) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Record) HasPriceOverride() bool {
	return r.adultPrice != nil || r.childPrice != nil
}

// Kind classifies the record. A null rooms value is a full block unless the
// record carries prices and no reason, which is how price-only overrides are
// stored; such records never touch inventory.
func (r *Record) Kind() Kind {
	priceOnly := r.reason == nil && r.HasPriceOverride()
	switch {
	case r.rooms.IsFullBlock() && priceOnly:
		return KindPriceOnly
	case r.rooms.IsFullBlock():
		return KindFullBlock
	case r.rooms.IsDelta() && r.rooms.Delta() == 0 && r.HasPriceOverride():
		return KindPriceOnly
	default:
		return KindPartial
	}
}

// Timestamp is the later of updated_at and created_at.
func (r *Record) Timestamp() time.Time {
	if r.updatedAt.After(r.createdAt) {
		return r.updatedAt
	}
	return r.createdAt
}

func (r *Record) Matches(accommodationID string, date time.Time) bool {
	return r.accommodationID == accommodationID && stay.SameDay(r.date, date)
}
