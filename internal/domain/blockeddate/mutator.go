package blockeddate

import (
	"errors"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/pkg/patch"
)

var (
	ErrNoAccommodation = errors.New("select an accommodation first")
	ErrEmptyPrices     = errors.New("enter an adult or child price")
	ErrUnknownSection  = errors.New("unknown blocked date section")
)

// DefaultBlockReason is stored on full blocks created without a reason so the
// record is never mistaken for a price-only override.
const DefaultBlockReason = "Blocked"

type Section string

const (
	SectionPrice     Section = "price"
	SectionInventory Section = "inventory"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
)

type MutationInput struct {
	Accommodation *accommodation.Accommodation
	Date          time.Time
	Section       Section

	// price section
	AdultPrice *money.Money
	ChildPrice *money.Money

	// inventory section
	BlockAll        bool
	SelectedRooms   int
	AvailableAtLoad int
	Reason          *string

	// Existing is the effective record for (accommodation, date), if any.
	Existing *Record

	Encoding Encoding
}

type Body struct {
	AccommodationID string
	Date            time.Time
	Reason          *string
	Rooms           Rooms
	AdultPrice      *money.Money
	ChildPrice      *money.Money
}

// RoomNumber encodes the body's rooms for the backend's room_number field.
// Under the legacy encoding a zero delta on a priced body without a reason is
// written as null, which reads back as a price-only override. Other deltas
// have no legacy form.
func (b Body) RoomNumber(enc Encoding) (*int, error) {
	if enc != EncodingLegacy || !b.Rooms.IsDelta() {
		return b.Rooms.Wire(), nil
	}
	if b.Rooms.Delta() == 0 && b.Reason == nil && (b.AdultPrice != nil || b.ChildPrice != nil) {
		return nil, nil
	}
	return nil, ErrDeltaUnsupported
}

type Mutation struct {
	Op       Op
	TargetID string
	Body     Body
}

// BuildPayload merges the edited section into the existing record, keeping
// the other section's fields. An existing record is always updated in place.
func BuildPayload(in MutationInput) (Mutation, error) {
	if in.Accommodation == nil {
		return Mutation{}, ErrNoAccommodation
	}

	m := Mutation{
		Op: OpCreate,
		Body: Body{
			AccommodationID: in.Accommodation.ID(),
			Date:            in.Date,
		},
	}
	if in.Existing != nil {
		m.Op = OpUpdate
		m.TargetID = in.Existing.ID()
	}

	switch in.Section {
	case SectionPrice:
		if in.AdultPrice == nil && in.ChildPrice == nil {
			return Mutation{}, ErrEmptyPrices
		}
		m.Body.AdultPrice = in.AdultPrice
		m.Body.ChildPrice = in.ChildPrice
		m.Body.Rooms = InventoryDelta(0)
		if in.Existing != nil {
			m.Body.AdultPrice = patch.CoalescePtr(in.AdultPrice, in.Existing.AdultPrice())
			m.Body.ChildPrice = patch.CoalescePtr(in.ChildPrice, in.Existing.ChildPrice())
			m.Body.Rooms = in.Existing.Rooms()
			m.Body.Reason = in.Existing.Reason()
		}

	case SectionInventory:
		m.Body.Reason = in.Reason
		if in.Existing != nil {
			m.Body.AdultPrice = in.Existing.AdultPrice()
			m.Body.ChildPrice = in.Existing.ChildPrice()
			m.Body.Reason = patch.CoalescePtr(in.Reason, in.Existing.Reason())
		} else {
			adult, child := in.Accommodation.AdultPrice(), in.Accommodation.ChildPrice()
			m.Body.AdultPrice, m.Body.ChildPrice = &adult, &child
		}

		if in.BlockAll {
			m.Body.Rooms = FullBlock()
			if m.Body.Reason == nil {
				reason := DefaultBlockReason
				m.Body.Reason = &reason
			}
			break
		}

		delta := in.SelectedRooms - in.AvailableAtLoad
		if in.Existing != nil {
			delta += in.Existing.Rooms().Delta()
		}
		m.Body.Rooms = InventoryDelta(delta)

	default:
		return Mutation{}, ErrUnknownSection
	}

	if _, err := m.Body.RoomNumber(in.Encoding); err != nil {
		return Mutation{}, err
	}
	return m, nil
}
