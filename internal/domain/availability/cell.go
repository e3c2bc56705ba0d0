package availability

import (
	"errors"
	"fmt"

	"stay-admin/internal/domain/blockeddate"
)

var ErrNotSelectable = errors.New("fully blocked dates can only be edited from the blocked dates list")

type CellState int

const (
	Unblocked CellState = iota
	Selected
	FullyBlocked
	PartiallyBlocked
	PriceOnly
)

func (s CellState) String() string {
	switch s {
	case Unblocked:
		return "unblocked"
	case Selected:
		return "selected"
	case FullyBlocked:
		return "fully_blocked"
	case PartiallyBlocked:
		return "partially_blocked"
	case PriceOnly:
		return "price_only"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

func (s CellState) Selectable() bool {
	return s != FullyBlocked
}

// StateOf derives the resting state of a calendar cell from its effective record.
func StateOf(rec *blockeddate.Record) CellState {
	if rec == nil {
		return Unblocked
	}
	switch rec.Kind() {
	case blockeddate.KindFullBlock:
		return FullyBlocked
	case blockeddate.KindPriceOnly:
		return PriceOnly
	default:
		return PartiallyBlocked
	}
}

// Toggle handles a click on a cell. Selecting a selected cell returns it to
// the state its record implies.
func (s CellState) Toggle(rec *blockeddate.Record) (CellState, error) {
	if s == Selected {
		return StateOf(rec), nil
	}
	if !s.Selectable() {
		return s, ErrNotSelectable
	}
	return Selected, nil
}

// Settle moves a selected cell to the state of the record saved for it.
func (s CellState) Settle(saved *blockeddate.Record) CellState {
	if s != Selected {
		return s
	}
	return StateOf(saved)
}
