package availability

import (
	"time"

	"stay-admin/internal/domain/blockeddate"
)

// Resolve computes the rooms still bookable on a day. A full block always
// shows zero; an inventory delta is added to the total, so a positive delta
// releases rooms. The result is never negative.
func Resolve(totalRooms, bookedRooms int, rec *blockeddate.Record) int {
	available := totalRooms - bookedRooms
	if rec != nil {
		switch rec.Kind() {
		case blockeddate.KindFullBlock:
			return 0
		case blockeddate.KindPartial:
			if _, legacy := rec.Rooms().Index(); legacy {
				available = totalRooms - 1 - bookedRooms
			} else {
				available = totalRooms + rec.Rooms().Delta() - bookedRooms
			}
		case blockeddate.KindPriceOnly:
		}
	}
	return max(available, 0)
}

// Snapshot is the availability of one accommodation on one day, as shown
// when the booking form or calendar loaded.
type Snapshot struct {
	AccommodationID string
	Date            time.Time
	Total           int
	Booked          int
	Available       int
	Record          *blockeddate.Record
}

func NewSnapshot(accommodationID string, date time.Time, total, booked int, rec *blockeddate.Record) Snapshot {
	return Snapshot{
		AccommodationID: accommodationID,
		Date:            date,
		Total:           total,
		Booked:          booked,
		Available:       Resolve(total, booked, rec),
		Record:          rec,
	}
}

func (s Snapshot) State() CellState {
	return StateOf(s.Record)
}

// MinAvailable is the bookable room count across a whole stay.
func MinAvailable(snapshots []Snapshot) int {
	if len(snapshots) == 0 {
		return 0
	}
	low := snapshots[0].Available
	for _, s := range snapshots[1:] {
		low = min(low, s.Available)
	}
	return low
}
