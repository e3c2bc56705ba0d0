package components

import (
	"stay-admin/internal/pkg/clock"
	"stay-admin/internal/usecase"
	"stay-admin/internal/usecase/commands"
	"stay-admin/internal/usecase/queries"
	"stay-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewAuditor,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewBlockedDateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccommodationQueries,
		queries.NewCouponQueries,
		queries.NewAvailabilityQueries,
		queries.NewRateQueries,
		queries.NewCalendarQueries,
		queries.NewBlockedDateQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
