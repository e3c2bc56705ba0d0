package blockeddate

import (
	"errors"
	"fmt"
)

// RoomsKind tags how a record's rooms value is interpreted. The backend
// stores a single nullable integer; the legacy schema used it as a room
// index, the current one as a signed inventory delta.
type RoomsKind int

const (
	RoomsFullBlock RoomsKind = iota
	RoomsIndex
	RoomsDelta
)

func (k RoomsKind) String() string {
	switch k {
	case RoomsFullBlock:
		return "full_block"
	case RoomsIndex:
		return "room_index"
	case RoomsDelta:
		return "inventory_delta"
	default:
		return fmt.Sprintf("RoomsKind(%d)", int(k))
	}
}

// Encoding is how the backend stores a non-null rooms value.
type Encoding int

const (
	EncodingDelta Encoding = iota
	// EncodingLegacy stores a room index; it cannot carry an inventory delta.
	EncodingLegacy
)

var ErrDeltaUnsupported = errors.New("room counts cannot be adjusted on this backend; block the whole day instead")

// Decode interprets a stored rooms value under enc.
func (enc Encoding) Decode(v *int) Rooms {
	if v == nil {
		return FullBlock()
	}
	if enc == EncodingLegacy {
		return RoomIndex(*v)
	}
	return InventoryDelta(*v)
}

type Rooms struct {
	kind  RoomsKind
	value int
}

func FullBlock() Rooms {
	return Rooms{kind: RoomsFullBlock}
}

func RoomIndex(index int) Rooms {
	return Rooms{kind: RoomsIndex, value: index}
}

func InventoryDelta(delta int) Rooms {
	return Rooms{kind: RoomsDelta, value: delta}
}

func (r Rooms) Kind() RoomsKind   { return r.kind }
func (r Rooms) IsFullBlock() bool { return r.kind == RoomsFullBlock }
func (r Rooms) IsRoomIndex() bool { return r.kind == RoomsIndex }
func (r Rooms) IsDelta() bool     { return r.kind == RoomsDelta }

// Delta is the signed inventory adjustment; zero for the other kinds.
func (r Rooms) Delta() int {
	if r.kind != RoomsDelta {
		return 0
	}
	return r.value
}

// Index is the blocked room number of a legacy record.
func (r Rooms) Index() (int, bool) {
	return r.value, r.kind == RoomsIndex
}

// Wire encodes the value for the backend's nullable room_number field.
func (r Rooms) Wire() *int {
	if r.kind == RoomsFullBlock {
		return nil
	}
	v := r.value
	return &v
}

func (r Rooms) String() string {
	if r.kind == RoomsFullBlock {
		return r.kind.String()
	}
	return fmt.Sprintf("%s(%d)", r.kind, r.value)
}
