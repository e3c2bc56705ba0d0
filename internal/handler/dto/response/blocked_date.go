package response

import (
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/usecase/commands"
)

type BlockedDateResponse struct {
	ID              string     `json:"id"`
	AccommodationID string     `json:"accommodationId"`
	Date            string     `json:"date"`
	Kind            string     `json:"kind"`
	Rooms           *int       `json:"rooms"`
	RoomsKind       string     `json:"roomsKind"`
	Reason          *string    `json:"reason"`
	AdultPrice      *float64   `json:"adultPrice"`
	ChildPrice      *float64   `json:"childPrice"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func FromBlockedDate(r *blockeddate.Record) *BlockedDateResponse {
	res := &BlockedDateResponse{
		ID:              r.ID(),
		AccommodationID: r.AccommodationID(),
		Date:            stay.FormatDate(r.Date()),
		Kind:            string(r.Kind()),
		Rooms:           r.Rooms().Wire(),
		RoomsKind:       r.Rooms().Kind().String(),
		Reason:          r.Reason(),
		AdultPrice:      moneyFloat(r.AdultPrice()),
		ChildPrice:      moneyFloat(r.ChildPrice()),
	}
	if ts := r.Timestamp(); !ts.IsZero() {
		res.UpdatedAt = &ts
	}
	return res
}

func FromBlockedDates(list []*blockeddate.Record) []*BlockedDateResponse {
	res := make([]*BlockedDateResponse, len(list))
	for i, r := range list {
		res[i] = FromBlockedDate(r)
	}
	return res
}

type SavedBlockedDateResponse struct {
	Date string `json:"date"`
	Op   string `json:"op"`
	ID   string `json:"id"`
}

type SaveBlockedDatesResponse struct {
	Saved []*SavedBlockedDateResponse `json:"saved"`
}

func FromSaved(saved []commands.SavedBlockedDate) *SaveBlockedDatesResponse {
	res := &SaveBlockedDatesResponse{Saved: make([]*SavedBlockedDateResponse, len(saved))}
	for i, s := range saved {
		res.Saved[i] = &SavedBlockedDateResponse{
			Date: stay.FormatDate(s.Date),
			Op:   string(s.Op),
			ID:   s.ID,
		}
	}
	return res
}
