//go:build unit

package blockeddate_test

import (
	"testing"
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func build(t *testing.T, b *builder.BlockedDateBuilder) *blockeddate.Record {
	t.Helper()
	rec, err := b.BuildDomain()
	require.NoError(t, err)
	return rec
}

func TestLatest(t *testing.T) {
	older := build(t, builder.NewBlockedDateBuilder().WithID("older"))
	newer := build(t, builder.NewBlockedDateBuilder().WithID("newer").Delta(2).
		UpdatedAtTime(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	otherDay := build(t, builder.NewBlockedDateBuilder().WithID("other-day").On(day.AddDate(0, 0, 1)).
		UpdatedAtTime(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	otherAcc := build(t, builder.NewBlockedDateBuilder().WithID("other-acc").With(func(b *builder.BlockedDateBuilder) {
		b.AccommodationID = "acc-2"
		b.UpdatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	}))
	records := []*blockeddate.Record{older, newer, otherDay, otherAcc}

	t.Run("latest wins over most restrictive", func(t *testing.T) {
		actual := blockeddate.Latest(records, "acc-1", day)
		require.NotNil(t, actual)
		assert.Equal(t, "newer", actual.ID())
	})

	t.Run("matches by day regardless of time", func(t *testing.T) {
		actual := blockeddate.Latest(records, "acc-1", day.Add(15*time.Hour))
		require.NotNil(t, actual)
		assert.Equal(t, "newer", actual.ID())
	})

	t.Run("created_at counts when updated_at is older", func(t *testing.T) {
		recent := build(t, builder.NewBlockedDateBuilder().WithID("recent-create").With(func(b *builder.BlockedDateBuilder) {
			b.CreatedAt = time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
			b.UpdatedAt = time.Time{}
		}))
		actual := blockeddate.Latest(append(records, recent), "acc-1", day)
		require.NotNil(t, actual)
		assert.Equal(t, "recent-create", actual.ID())
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, blockeddate.Latest(records, "acc-3", day))
		assert.Nil(t, blockeddate.Latest(nil, "acc-1", day))
	})
}

func TestLatestPriced(t *testing.T) {
	priced := build(t, builder.NewBlockedDateBuilder().WithID("priced").PriceOnly(ptr.Of(1800.0), nil))
	block := build(t, builder.NewBlockedDateBuilder().WithID("block").
		UpdatedAtTime(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)))

	actual := blockeddate.LatestPriced([]*blockeddate.Record{priced, block}, "acc-1", day)
	require.NotNil(t, actual)
	assert.Equal(t, "priced", actual.ID())
}

func TestForAccommodation(t *testing.T) {
	a := build(t, builder.NewBlockedDateBuilder())
	b := build(t, builder.NewBlockedDateBuilder().With(func(b *builder.BlockedDateBuilder) { b.AccommodationID = "acc-2" }))

	actual := blockeddate.ForAccommodation([]*blockeddate.Record{a, b}, "acc-2")
	require.Len(t, actual, 1)
	assert.Equal(t, "acc-2", actual[0].AccommodationID())
}
