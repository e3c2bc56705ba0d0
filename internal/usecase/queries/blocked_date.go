package queries

import (
	"context"
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/usecase/shared"
)

// BlockedDateQueries serves the blocked-dates list. Here a failed read is
// reported, since an empty list would invite duplicate records.
type BlockedDateQueries interface {
	List(ctx context.Context, accommodationID string) ([]*blockeddate.Record, error)
	Effective(ctx context.Context, accommodationID string, date time.Time) (*blockeddate.Record, error)
}

type blockedDateQueriesImpl struct {
	reader shared.BlockedDateReader
}

func NewBlockedDateQueries(reader shared.BlockedDateReader) BlockedDateQueries {
	return &blockedDateQueriesImpl{reader: reader}
}

func (q *blockedDateQueriesImpl) List(ctx context.Context, accommodationID string) ([]*blockeddate.Record, error) {
	records, err := q.reader.ListBlockedDates(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamRead)
	}
	if accommodationID == "" {
		return records, nil
	}
	return blockeddate.ForAccommodation(records, accommodationID), nil
}

func (q *blockedDateQueriesImpl) Effective(ctx context.Context, accommodationID string, date time.Time) (*blockeddate.Record, error) {
	records, err := q.List(ctx, accommodationID)
	if err != nil {
		return nil, err
	}
	return blockeddate.Latest(records, accommodationID, date), nil
}
