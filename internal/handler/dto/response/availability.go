package response

import (
	"stay-admin/internal/domain/availability"
	"stay-admin/internal/domain/pricing"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/usecase/queries"
)

type AvailabilityResponse struct {
	AccommodationID string               `json:"accommodationId"`
	Date            string               `json:"date"`
	Total           int                  `json:"total"`
	Booked          int                  `json:"booked"`
	Available       int                  `json:"available"`
	State           string               `json:"state"`
	Record          *BlockedDateResponse `json:"record,omitempty"`
}

func FromSnapshot(s availability.Snapshot) *AvailabilityResponse {
	res := &AvailabilityResponse{
		AccommodationID: s.AccommodationID,
		Date:            stay.FormatDate(s.Date),
		Total:           s.Total,
		Booked:          s.Booked,
		Available:       s.Available,
		State:           s.State().String(),
	}
	if s.Record != nil {
		res.Record = FromBlockedDate(s.Record)
	}
	return res
}

type RateResponse struct {
	Date       string  `json:"date,omitempty"`
	Adult      float64 `json:"adultPrice"`
	Child      float64 `json:"childPrice"`
	Overridden bool    `json:"overridden"`
}

func FromRate(date string, r pricing.Rate) *RateResponse {
	res := &RateResponse{Date: date}
	copyFrom(res, r)
	return res
}

type CalendarDayResponse struct {
	Date       string  `json:"date"`
	State      string  `json:"state"`
	Selectable bool    `json:"selectable"`
	Total      int     `json:"total"`
	Booked     int     `json:"booked"`
	Available  int     `json:"available"`
	AdultPrice float64 `json:"adultPrice"`
	ChildPrice float64 `json:"childPrice"`
	Overridden bool    `json:"overridden"`
	RecordID   string  `json:"recordId,omitempty"`
}

func FromCalendar(days []queries.CalendarDay) []*CalendarDayResponse {
	res := make([]*CalendarDayResponse, len(days))
	for i, d := range days {
		res[i] = &CalendarDayResponse{
			Date:       stay.FormatDate(d.Date),
			State:      d.State.String(),
			Selectable: d.State.Selectable(),
			Total:      d.Availability.Total,
			Booked:     d.Availability.Booked,
			Available:  d.Availability.Available,
			AdultPrice: d.Rate.Adult.Float(),
			ChildPrice: d.Rate.Child.Float(),
			Overridden: d.Rate.Overridden,
		}
		if d.Availability.Record != nil {
			res[i].RecordID = d.Availability.Record.ID()
		}
	}
	return res
}
