//go:build unit || e2e

package builder

import (
	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/pkg/money"
)

type AccommodationBuilder struct {
	ID              string
	Name            string
	Type            accommodation.Type
	Rooms           int
	Capacity        int
	Address         string
	OwnerID         string
	AdultPrice      float64
	ChildPrice      float64
	MaxPersonsVilla *int
	ExtraPersonRate *float64
}

func NewAccommodationBuilder() *AccommodationBuilder {
	return &AccommodationBuilder{
		ID:         "acc-1",
		Name:       "Lakeview Rooms",
		Type:       accommodation.TypeStandard,
		Rooms:      5,
		Capacity:   2,
		Address:    "12 Lake Road",
		OwnerID:    "owner-1",
		AdultPrice: 1000,
		ChildPrice: 500,
	}
}

func (a *AccommodationBuilder) With(mutate func(*AccommodationBuilder)) *AccommodationBuilder {
	mutate(a)
	return a
}

func (a *AccommodationBuilder) WithID(id string) *AccommodationBuilder {
	a.ID = id
	return a
}

func (a *AccommodationBuilder) WithName(name string) *AccommodationBuilder {
	a.Name = name
	return a
}

func (a *AccommodationBuilder) WithRooms(rooms int) *AccommodationBuilder {
	a.Rooms = rooms
	return a
}

func (a *AccommodationBuilder) WithCapacity(capacity int) *AccommodationBuilder {
	a.Capacity = capacity
	return a
}

func (a *AccommodationBuilder) WithPrices(adult, child float64) *AccommodationBuilder {
	a.AdultPrice = adult
	a.ChildPrice = child
	return a
}

// AsVilla switches to the villa pricing branch: adult price becomes the flat nightly rate.
func (a *AccommodationBuilder) AsVilla(rate, extraPersonRate float64, capacity int) *AccommodationBuilder {
	a.Name = "Hilltop Villa"
	a.Type = accommodation.TypeVilla
	a.AdultPrice = rate
	a.ChildPrice = 0
	a.Capacity = capacity
	a.ExtraPersonRate = &extraPersonRate
	maxPersons := capacity + 4
	a.MaxPersonsVilla = &maxPersons
	return a
}

// Build methods
func (a *AccommodationBuilder) BuildDomain() (*accommodation.Accommodation, error) {
	var extra *money.Money
	if a.ExtraPersonRate != nil {
		m := money.FromFloat(*a.ExtraPersonRate)
		extra = &m
	}
	return accommodation.New(accommodation.Params{
		ID:              a.ID,
		Name:            a.Name,
		Type:            a.Type,
		Rooms:           a.Rooms,
		Capacity:        a.Capacity,
		Address:         a.Address,
		OwnerID:         a.OwnerID,
		AdultPrice:      money.FromFloat(a.AdultPrice),
		ChildPrice:      money.FromFloat(a.ChildPrice),
		MaxPersonsVilla: a.MaxPersonsVilla,
		ExtraPersonRate: extra,
	})
}
