package accommodation

import (
	"errors"
	"strings"

	"stay-admin/internal/pkg/money"
)

var (
	ErrEmptyID          = errors.New("accommodation id cannot be empty")
	ErrEmptyName        = errors.New("accommodation name cannot be empty")
	ErrNegativeRooms    = errors.New("room count cannot be negative")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

type Accommodation struct {
	id              string
	name            string
	accType         Type
	rooms           int
	capacity        int
	address         string
	ownerID         string
	adultPrice      money.Money
	childPrice      money.Money
	maxPersonsVilla *int
	extraPersonRate *money.Money
}

type Params struct {
	ID              string
	Name            string
	Type            Type
	Rooms           int
	Capacity        int
	Address         string
	OwnerID         string
	AdultPrice      money.Money
	ChildPrice      money.Money
	MaxPersonsVilla *int
	ExtraPersonRate *money.Money
}

func New(p Params) (*Accommodation, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, ErrEmptyID
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if p.Rooms < 0 {
		return nil, ErrNegativeRooms
	}
	if p.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if p.AdultPrice.LessThan(money.Zero) || p.ChildPrice.LessThan(money.Zero) {
		return nil, ErrNegativePrice
	}
	if p.ExtraPersonRate != nil && p.ExtraPersonRate.LessThan(money.Zero) {
		return nil, ErrNegativePrice
	}

	rooms := p.Rooms
	// a villa is rented as one unit
	if p.Type.IsVilla() {
		rooms = 1
	}

	return &Accommodation{
		id:              id,
		name:            name,
		accType:         p.Type,
		rooms:           rooms,
		capacity:        p.Capacity,
		address:         p.Address,
		ownerID:         p.OwnerID,
		adultPrice:      p.AdultPrice,
		childPrice:      p.ChildPrice,
		maxPersonsVilla: p.MaxPersonsVilla,
		extraPersonRate: p.ExtraPersonRate,
	}, nil
}

func (a *Accommodation) ID() string            { return a.id }
func (a *Accommodation) Name() string          { return a.name }
func (a *Accommodation) Type() Type            { return a.accType }
func (a *Accommodation) IsVilla() bool         { return a.accType.IsVilla() }
func (a *Accommodation) Rooms() int            { return a.rooms }
func (a *Accommodation) Capacity() int         { return a.capacity }
func (a *Accommodation) Address() string       { return a.address }
func (a *Accommodation) OwnerID() string       { return a.ownerID }
func (a *Accommodation) MaxPersonsVilla() *int { return a.maxPersonsVilla }

// AdultPrice is the per-adult nightly rate, or the flat nightly rate for a villa.
func (a *Accommodation) AdultPrice() money.Money { return a.adultPrice }
func (a *Accommodation) ChildPrice() money.Money { return a.childPrice }

// ExtraPersonRate is the nightly villa surcharge per extra adult; zero when unset.
func (a *Accommodation) ExtraPersonRate() money.Money {
	if a.extraPersonRate == nil {
		return money.Zero
	}
	return *a.extraPersonRate
}
