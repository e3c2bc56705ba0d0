//go:build unit

package blockeddate_test

import (
	"testing"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/availability"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lakeview(t *testing.T) *accommodation.Accommodation {
	t.Helper()
	acc, err := builder.NewAccommodationBuilder().BuildDomain()
	require.NoError(t, err)
	return acc
}

func TestBuildPayload_Errors(t *testing.T) {
	_, err := blockeddate.BuildPayload(blockeddate.MutationInput{Date: day, Section: blockeddate.SectionPrice})
	assert.ErrorIs(t, err, blockeddate.ErrNoAccommodation)

	_, err = blockeddate.BuildPayload(blockeddate.MutationInput{
		Accommodation: lakeview(t),
		Date:          day,
		Section:       blockeddate.SectionPrice,
	})
	assert.ErrorIs(t, err, blockeddate.ErrEmptyPrices)

	_, err = blockeddate.BuildPayload(blockeddate.MutationInput{
		Accommodation: lakeview(t),
		Date:          day,
		Section:       "rates",
	})
	assert.ErrorIs(t, err, blockeddate.ErrUnknownSection)
}

func TestBuildPayload_PriceSection(t *testing.T) {
	adult := money.FromFloat(1800)

	t.Run("new record keeps inventory untouched", func(t *testing.T) {
		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation: lakeview(t),
			Date:          day,
			Section:       blockeddate.SectionPrice,
			AdultPrice:    &adult,
		})
		require.NoError(t, err)

		assert.Equal(t, blockeddate.OpCreate, m.Op)
		assert.Empty(t, m.TargetID)
		assert.Equal(t, "acc-1", m.Body.AccommodationID)
		assert.Equal(t, blockeddate.InventoryDelta(0), m.Body.Rooms)
		assert.Equal(t, &adult, m.Body.AdultPrice)
		assert.Nil(t, m.Body.ChildPrice)
		assert.Nil(t, m.Body.Reason)
	})

	t.Run("existing record is updated and its rooms carried", func(t *testing.T) {
		existing := build(t, builder.NewBlockedDateBuilder().WithID("bd-9").Delta(-2).With(func(b *builder.BlockedDateBuilder) {
			b.ChildPrice = ptr.Of(300.0)
		}))

		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation: lakeview(t),
			Date:          day,
			Section:       blockeddate.SectionPrice,
			AdultPrice:    &adult,
			Existing:      existing,
		})
		require.NoError(t, err)

		assert.Equal(t, blockeddate.OpUpdate, m.Op)
		assert.Equal(t, "bd-9", m.TargetID)
		assert.Equal(t, blockeddate.InventoryDelta(-2), m.Body.Rooms)
		assert.Equal(t, 1800.0, m.Body.AdultPrice.Float())
		assert.Equal(t, 300.0, m.Body.ChildPrice.Float())
		assert.Equal(t, "Maintenance", *m.Body.Reason)
	})
}

func TestBuildPayload_InventorySection(t *testing.T) {
	t.Run("block all on a new record", func(t *testing.T) {
		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation: lakeview(t),
			Date:          day,
			Section:       blockeddate.SectionInventory,
			BlockAll:      true,
		})
		require.NoError(t, err)

		assert.Equal(t, blockeddate.OpCreate, m.Op)
		assert.True(t, m.Body.Rooms.IsFullBlock())
		assert.Equal(t, blockeddate.DefaultBlockReason, *m.Body.Reason)
		assert.Equal(t, 1000.0, m.Body.AdultPrice.Float())
		assert.Equal(t, 500.0, m.Body.ChildPrice.Float())
	})

	t.Run("delta on a new record", func(t *testing.T) {
		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation:   lakeview(t),
			Date:            day,
			Section:         blockeddate.SectionInventory,
			SelectedRooms:   1,
			AvailableAtLoad: 3,
			Reason:          ptr.Of("Renovation"),
		})
		require.NoError(t, err)

		assert.Equal(t, blockeddate.InventoryDelta(-2), m.Body.Rooms)
		assert.Equal(t, "Renovation", *m.Body.Reason)
	})

	t.Run("delta accumulates onto existing record and keeps its prices", func(t *testing.T) {
		existing := build(t, builder.NewBlockedDateBuilder().WithID("bd-3").Delta(-1).With(func(b *builder.BlockedDateBuilder) {
			b.AdultPrice = ptr.Of(2000.0)
		}))

		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation:   lakeview(t),
			Date:            day,
			Section:         blockeddate.SectionInventory,
			SelectedRooms:   4,
			AvailableAtLoad: 2,
			Existing:        existing,
		})
		require.NoError(t, err)

		assert.Equal(t, blockeddate.OpUpdate, m.Op)
		assert.Equal(t, "bd-3", m.TargetID)
		assert.Equal(t, blockeddate.InventoryDelta(1), m.Body.Rooms)
		assert.Equal(t, 2000.0, m.Body.AdultPrice.Float())
		assert.Nil(t, m.Body.ChildPrice)
		assert.Equal(t, "Maintenance", *m.Body.Reason)
	})
}

func TestBuildPayload_LegacyEncoding(t *testing.T) {
	adult := money.FromFloat(2400)

	t.Run("price override round-trips as price-only", func(t *testing.T) {
		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation: lakeview(t),
			Date:          day,
			Section:       blockeddate.SectionPrice,
			AdultPrice:    &adult,
			Encoding:      blockeddate.EncodingLegacy,
		})
		require.NoError(t, err)

		wire, err := m.Body.RoomNumber(blockeddate.EncodingLegacy)
		require.NoError(t, err)
		assert.Nil(t, wire)

		rec, err := blockeddate.NewRecord(blockeddate.Params{
			ID:              "bd-1",
			AccommodationID: m.Body.AccommodationID,
			Date:            m.Body.Date,
			Rooms:           blockeddate.EncodingLegacy.Decode(wire),
			Reason:          m.Body.Reason,
			AdultPrice:      m.Body.AdultPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, blockeddate.KindPriceOnly, rec.Kind())
		assert.Equal(t, 5, availability.Resolve(5, 0, rec))
	})

	t.Run("inventory delta is rejected", func(t *testing.T) {
		_, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation:   lakeview(t),
			Date:            day,
			Section:         blockeddate.SectionInventory,
			SelectedRooms:   3,
			AvailableAtLoad: 5,
			Encoding:        blockeddate.EncodingLegacy,
		})
		assert.ErrorIs(t, err, blockeddate.ErrDeltaUnsupported)
	})

	t.Run("block all and kept room index still encode", func(t *testing.T) {
		m, err := blockeddate.BuildPayload(blockeddate.MutationInput{
			Accommodation: lakeview(t),
			Date:          day,
			Section:       blockeddate.SectionInventory,
			BlockAll:      true,
			Encoding:      blockeddate.EncodingLegacy,
		})
		require.NoError(t, err)
		wire, err := m.Body.RoomNumber(blockeddate.EncodingLegacy)
		require.NoError(t, err)
		assert.Nil(t, wire)

		body := blockeddate.Body{Rooms: blockeddate.RoomIndex(2), AdultPrice: &adult}
		wire, err = body.RoomNumber(blockeddate.EncodingLegacy)
		require.NoError(t, err)
		assert.Equal(t, ptr.Of(2), wire)
	})

	t.Run("delta encoding writes the delta", func(t *testing.T) {
		body := blockeddate.Body{Rooms: blockeddate.InventoryDelta(0), AdultPrice: &adult}
		wire, err := body.RoomNumber(blockeddate.EncodingDelta)
		require.NoError(t, err)
		assert.Equal(t, ptr.Of(0), wire)
	})
}
