package bootstrap

import (
	"log/slog"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/infra/backend"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			NewBackendClient,
			fx.As(new(shared.AccommodationReader)),
			fx.As(new(shared.CouponReader)),
			fx.As(new(shared.OccupancyReader)),
			fx.As(new(shared.BlockedDateReader)),
			fx.As(new(shared.BlockedDateWriter)),
			fx.As(new(shared.BookingWriter)),
		),
		NewRoomsEncoding,
	),
)

func NewBackendClient(cfg config.Config, cache shared.Cache, m *metrics.Metrics, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend, cache, m, logger)
}

func NewRoomsEncoding(cfg config.Config) blockeddate.Encoding {
	return backend.RoomsEncoding(cfg.Backend.RoomsSchema)
}
