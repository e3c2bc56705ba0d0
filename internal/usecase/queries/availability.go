package queries

import (
	"context"
	"log/slog"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/availability"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/shared"
)

// StayAvailability is the per-night breakdown of a stay. Available is the
// minimum over all nights.
type StayAvailability struct {
	Nights    []availability.Snapshot
	Available int
}

// AvailabilityQueries never fails: occupancy and blocked-date read errors
// count as zero booked and no record.
type AvailabilityQueries interface {
	Resolve(ctx context.Context, acc *accommodation.Accommodation, date time.Time) availability.Snapshot
	ResolveStay(ctx context.Context, acc *accommodation.Accommodation, checkIn, checkOut time.Time) StayAvailability
}

type availabilityQueriesImpl struct {
	occupancy shared.OccupancyReader
	blocked   shared.BlockedDateReader
	failOpen  failOpen
}

func NewAvailabilityQueries(
	occupancy shared.OccupancyReader,
	blocked shared.BlockedDateReader,
	logger *slog.Logger,
	m *metrics.Metrics,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		occupancy: occupancy,
		blocked:   blocked,
		failOpen:  failOpen{logger: logger, metrics: m},
	}
}

func (q *availabilityQueriesImpl) Resolve(ctx context.Context, acc *accommodation.Accommodation, date time.Time) availability.Snapshot {
	records := q.blockedDates(ctx, acc.ID())
	return q.snapshot(ctx, acc, stay.Day(date), records)
}

func (q *availabilityQueriesImpl) ResolveStay(ctx context.Context, acc *accommodation.Accommodation, checkIn, checkOut time.Time) StayAvailability {
	records := q.blockedDates(ctx, acc.ID())

	var nights []availability.Snapshot
	if stay.NightsBetween(checkIn, checkOut) == 0 {
		// without a valid range only the check-in night can be judged
		if !checkIn.IsZero() {
			nights = append(nights, q.snapshot(ctx, acc, stay.Day(checkIn), records))
		}
	} else {
		for date := range stay.EnumerateDates(checkIn, checkOut) {
			nights = append(nights, q.snapshot(ctx, acc, date, records))
		}
	}
	return StayAvailability{Nights: nights, Available: availability.MinAvailable(nights)}
}

func (q *availabilityQueriesImpl) snapshot(ctx context.Context, acc *accommodation.Accommodation, date time.Time, records []*blockeddate.Record) availability.Snapshot {
	booked, err := q.occupancy.BookedRooms(ctx, acc.ID(), date)
	if err != nil {
		q.failOpen.note(readOccupancy, err, "accommodation_id", acc.ID(), "date", stay.FormatDate(date))
		booked = 0
	}
	rec := blockeddate.Latest(records, acc.ID(), date)
	return availability.NewSnapshot(acc.ID(), date, acc.Rooms(), booked, rec)
}

func (q *availabilityQueriesImpl) blockedDates(ctx context.Context, accommodationID string) []*blockeddate.Record {
	records, err := q.blocked.ListBlockedDates(ctx)
	if err != nil {
		q.failOpen.note(readBlockedDates, err, "accommodation_id", accommodationID)
		return nil
	}
	return blockeddate.ForAccommodation(records, accommodationID)
}
