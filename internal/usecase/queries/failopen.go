package queries

import (
	"log/slog"

	"stay-admin/internal/pkg/metrics"
)

// Read names used in logs and the fail-open counter.
const (
	readOccupancy    = "occupancy"
	readBlockedDates = "blocked_dates"
	readCoupons      = "coupons"
)

// failOpen records a read whose error is replaced by a permissive default.
// Under a backend outage availability is overstated; the warn log and the
// counter are the only signals.
type failOpen struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func (f failOpen) note(read string, err error, attrs ...any) {
	f.metrics.FailOpenReads.WithLabelValues(read).Inc()
	f.logger.Warn("read failed, continuing with permissive default",
		append([]any{"read", read, "error", err}, attrs...)...)
}
