package queries

import (
	"context"
	"log/slog"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/coupon"
	"stay-admin/internal/pkg/errs"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/shared"
)

type CouponQueries interface {
	// Eligible lists the active coupons usable for acc. A failed read yields an empty list.
	Eligible(ctx context.Context, acc *accommodation.Accommodation) []*coupon.Coupon
	// Apply looks up an explicitly entered code. Unlike Eligible, a failed read is an error.
	Apply(ctx context.Context, acc *accommodation.Accommodation, code string) (*coupon.Coupon, error)
}

type couponQueriesImpl struct {
	reader   shared.CouponReader
	failOpen failOpen
}

func NewCouponQueries(reader shared.CouponReader, logger *slog.Logger, m *metrics.Metrics) CouponQueries {
	return &couponQueriesImpl{
		reader:   reader,
		failOpen: failOpen{logger: logger, metrics: m},
	}
}

func (q *couponQueriesImpl) Eligible(ctx context.Context, acc *accommodation.Accommodation) []*coupon.Coupon {
	list, err := q.reader.ListCoupons(ctx)
	if err != nil {
		q.failOpen.note(readCoupons, err, "accommodation_id", acc.ID())
		return []*coupon.Coupon{}
	}
	return coupon.FilterEligible(list, acc)
}

func (q *couponQueriesImpl) Apply(ctx context.Context, acc *accommodation.Accommodation, code string) (*coupon.Coupon, error) {
	list, err := q.reader.ListCoupons(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamRead)
	}
	c, ok := coupon.FindByCode(list, code)
	if !ok {
		return nil, ErrCouponNotFound
	}
	if !c.IsEligibleFor(acc) {
		return nil, ErrCouponIneligible
	}
	return c, nil
}
