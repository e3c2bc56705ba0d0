//go:build unit || e2e

package builder

import (
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/pkg/money"
)

type BlockedDateBuilder struct {
	ID              string
	AccommodationID string
	Date            time.Time
	Rooms           blockeddate.Rooms
	Reason          *string
	AdultPrice      *float64
	ChildPrice      *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBlockedDateBuilder defaults to a full block on 2025-01-10 for acc-1.
func NewBlockedDateBuilder() *BlockedDateBuilder {
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	reason := "Maintenance"
	return &BlockedDateBuilder{
		ID:              "bd-1",
		AccommodationID: "acc-1",
		Date:            time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Rooms:           blockeddate.FullBlock(),
		Reason:          &reason,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (b *BlockedDateBuilder) With(mutate func(*BlockedDateBuilder)) *BlockedDateBuilder {
	mutate(b)
	return b
}

func (b *BlockedDateBuilder) WithID(id string) *BlockedDateBuilder {
	b.ID = id
	return b
}

func (b *BlockedDateBuilder) On(date time.Time) *BlockedDateBuilder {
	b.Date = date
	return b
}

// UpdatedAtTime sets the timestamp used by latest-wins selection.
func (b *BlockedDateBuilder) UpdatedAtTime(ts time.Time) *BlockedDateBuilder {
	b.UpdatedAt = ts
	return b
}

func (b *BlockedDateBuilder) Delta(delta int) *BlockedDateBuilder {
	b.Rooms = blockeddate.InventoryDelta(delta)
	return b
}

// PriceOnly turns the record into a price override with no reason and a null rooms value.
func (b *BlockedDateBuilder) PriceOnly(adult, child *float64) *BlockedDateBuilder {
	b.Reason = nil
	b.Rooms = blockeddate.FullBlock()
	b.AdultPrice = adult
	b.ChildPrice = child
	return b
}

// Build methods
func (b *BlockedDateBuilder) BuildDomain() (*blockeddate.Record, error) {
	return blockeddate.NewRecord(blockeddate.Params{
		ID:              b.ID,
		AccommodationID: b.AccommodationID,
		Date:            b.Date,
		Rooms:           b.Rooms,
		Reason:          b.Reason,
		AdultPrice:      moneyPtr(b.AdultPrice),
		ChildPrice:      moneyPtr(b.ChildPrice),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	})
}

func moneyPtr(v *float64) *money.Money {
	if v == nil {
		return nil
	}
	m := money.FromFloat(*v)
	return &m
}
