package queries

import (
	"context"
	"log/slog"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/availability"
	"stay-admin/internal/domain/pricing"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/shared"
)

const MaxCalendarDays = 62

type CalendarDay struct {
	Date         time.Time
	State        availability.CellState
	Availability availability.Snapshot
	Rate         pricing.Rate
}

type CalendarQueries interface {
	// Range returns one cell per day in [from, to).
	Range(ctx context.Context, acc *accommodation.Accommodation, from, to time.Time) ([]CalendarDay, error)
}

type calendarQueriesImpl struct {
	avail *availabilityQueriesImpl
}

func NewCalendarQueries(
	occupancy shared.OccupancyReader,
	blocked shared.BlockedDateReader,
	logger *slog.Logger,
	m *metrics.Metrics,
) CalendarQueries {
	return &calendarQueriesImpl{
		avail: &availabilityQueriesImpl{
			occupancy: occupancy,
			blocked:   blocked,
			failOpen:  failOpen{logger: logger, metrics: m},
		},
	}
}

func (q *calendarQueriesImpl) Range(ctx context.Context, acc *accommodation.Accommodation, from, to time.Time) ([]CalendarDay, error) {
	days := stay.NightsBetween(from, to)
	if days == 0 {
		return nil, errs.Wrap(ErrInvalidRange, "to must be after from")
	}
	if days > MaxCalendarDays {
		return nil, errs.Wrapf(ErrInvalidRange, "at most %d days per request", MaxCalendarDays)
	}

	// one blocked-dates read serves both availability and rates
	records := q.avail.blockedDates(ctx, acc.ID())
	rates := pricing.NewTable(acc, records)

	out := make([]CalendarDay, 0, days)
	for date := range stay.EnumerateDates(from, to) {
		snap := q.avail.snapshot(ctx, acc, date, records)
		out = append(out, CalendarDay{
			Date:         date,
			State:        snap.State(),
			Availability: snap,
			Rate:         rates.At(date),
		})
	}
	return out, nil
}
