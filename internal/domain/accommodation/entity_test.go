//go:build unit

package accommodation_test

import (
	"testing"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/pkg/money"
	"stay-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AccommodationBuilder)
	errIs  error
}

func TestAccommodation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAccommodationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Lakeview Rooms", actual.Name())
		assert.Equal(t, accommodation.TypeStandard, actual.Type())
		assert.False(t, actual.IsVilla())
		assert.Equal(t, 5, actual.Rooms())
		assert.Equal(t, money.Zero, actual.ExtraPersonRate())
	})

	t.Run("villa is a single unit", func(t *testing.T) {
		actual, err := builder.NewAccommodationBuilder().AsVilla(5000, 500, 10).WithRooms(4).BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsVilla())
		assert.Equal(t, 1, actual.Rooms())
		assert.Equal(t, 500.0, actual.ExtraPersonRate().Float())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty id", mutate: func(b *builder.AccommodationBuilder) { b.ID = " " }, errIs: accommodation.ErrEmptyID},
			{name: "empty name", mutate: func(b *builder.AccommodationBuilder) { b.Name = "" }, errIs: accommodation.ErrEmptyName},
			{name: "unknown type", mutate: func(b *builder.AccommodationBuilder) { b.Type = "Treehouse" }, errIs: accommodation.ErrInvalidType},
			{name: "negative rooms", mutate: func(b *builder.AccommodationBuilder) { b.Rooms = -1 }, errIs: accommodation.ErrNegativeRooms},
			{name: "negative capacity", mutate: func(b *builder.AccommodationBuilder) { b.Capacity = -2 }, errIs: accommodation.ErrNegativeCapacity},
			{name: "negative price", mutate: func(b *builder.AccommodationBuilder) { b.AdultPrice = -1 }, errIs: accommodation.ErrNegativePrice},
			{name: "couple cottage accepted", mutate: func(b *builder.AccommodationBuilder) { b.Type = accommodation.TypeCoupleCottage }},
		})
	})
}

func TestNewType(t *testing.T) {
	tp, err := accommodation.NewType("Couple Cottage")
	require.NoError(t, err)
	assert.Equal(t, accommodation.TypeCoupleCottage, tp)

	_, err = accommodation.NewType("villa")
	assert.ErrorIs(t, err, accommodation.ErrInvalidType)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAccommodationBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
