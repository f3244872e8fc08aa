package components

import (
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewGuestCommands,
		commands.NewReservationCommands,
		commands.NewRoomStatusCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewAvailabilityQueries,
		queries.NewGuestQueries,
		queries.NewReservationQueries,
	),
)
