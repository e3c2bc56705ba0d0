//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/pkg/ptr"
	"stay-admin/internal/usecase/queries"
	"stay-admin/tests/common/builder"
	sharedmock "stay-admin/tests/mock/shared"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("override for the day", func(t *testing.T) {
		reader := sharedmock.NewMockBlockedDateReader(gomock.NewController(t))
		q := queries.NewRateQueries(reader, discardLogger(), metrics.New())
		rec := blocked(t, builder.NewBlockedDateBuilder().PriceOnly(ptr.Of(1400.0), nil))
		reader.EXPECT().ListBlockedDates(gomock.Any()).Return([]*blockeddate.Record{rec}, nil)

		rate := q.Resolve(ctx, lakeview(t), jan10.Add(10*time.Hour))

		assert.True(t, rate.Overridden)
		assert.Equal(t, 1400.0, rate.Adult.Float())
		assert.Equal(t, 500.0, rate.Child.Float())
	})

	t.Run("read failure falls back to base pricing", func(t *testing.T) {
		reader := sharedmock.NewMockBlockedDateReader(gomock.NewController(t))
		m := metrics.New()
		q := queries.NewRateQueries(reader, discardLogger(), m)
		reader.EXPECT().ListBlockedDates(gomock.Any()).Return(nil, errors.New("connection refused"))

		table := q.Table(ctx, lakeview(t))

		assert.False(t, table.At(jan10).Overridden)
		assert.Equal(t, 1000.0, table.At(jan10).Adult.Float())
		assert.Equal(t, 1.0, testutil.ToFloat64(m.FailOpenReads.WithLabelValues("blocked_dates")))
	})
}
