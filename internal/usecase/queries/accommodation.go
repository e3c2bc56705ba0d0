package queries

import (
	"context"
	"strings"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/infra"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/usecase/shared"
)

type AccommodationQueries interface {
	List(ctx context.Context) ([]*accommodation.Accommodation, error)
	Get(ctx context.Context, id string) (*accommodation.Accommodation, error)
}

type accommodationQueriesImpl struct {
	reader shared.AccommodationReader
}

func NewAccommodationQueries(reader shared.AccommodationReader) AccommodationQueries {
	return &accommodationQueriesImpl{reader: reader}
}

func (q *accommodationQueriesImpl) List(ctx context.Context) ([]*accommodation.Accommodation, error) {
	list, err := q.reader.ListAccommodations(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamRead)
	}
	return list, nil
}

func (q *accommodationQueriesImpl) Get(ctx context.Context, id string) (*accommodation.Accommodation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrAccommodationNotFound
	}
	acc, err := q.reader.GetAccommodation(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationNotFound
		}
		return nil, errs.Mark(err, ErrUpstreamRead)
	}
	return acc, nil
}
