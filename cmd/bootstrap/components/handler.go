package components

import (
	"stay-admin/internal/handler"
	"stay-admin/internal/handler/api"
	"stay-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAccommodationHandler,
		api.NewBookingHandler,
		api.NewSessionHandler,
		api.NewBlockedDateHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
