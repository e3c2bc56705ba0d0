package bootstrap

import (
	"log/slog"

	"stay-admin/internal/handler/middleware"
	"stay-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewHTTPLogger,
		NewLogger,
	),
)

func NewHTTPLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
