package queries

import (
	"context"
	"log/slog"
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/pricing"
	"stay-admin/internal/domain/stay"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/shared"
)

// RateQueries falls back to base package pricing when blocked dates cannot be read.
type RateQueries interface {
	Resolve(ctx context.Context, acc *accommodation.Accommodation, date time.Time) pricing.Rate
	Table(ctx context.Context, acc *accommodation.Accommodation) pricing.Table
}

type rateQueriesImpl struct {
	blocked  shared.BlockedDateReader
	failOpen failOpen
}

func NewRateQueries(blocked shared.BlockedDateReader, logger *slog.Logger, m *metrics.Metrics) RateQueries {
	return &rateQueriesImpl{
		blocked:  blocked,
		failOpen: failOpen{logger: logger, metrics: m},
	}
}

func (q *rateQueriesImpl) Resolve(ctx context.Context, acc *accommodation.Accommodation, date time.Time) pricing.Rate {
	return q.Table(ctx, acc).At(stay.Day(date))
}

func (q *rateQueriesImpl) Table(ctx context.Context, acc *accommodation.Accommodation) pricing.Table {
	records, err := q.blocked.ListBlockedDates(ctx)
	if err != nil {
		q.failOpen.note(readBlockedDates, err, "accommodation_id", acc.ID())
		return pricing.BaseTable(acc)
	}
	return pricing.NewTable(acc, records)
}
