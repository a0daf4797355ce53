package components

import (
	"log/slog"

	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/internal/usecase/queries"
	"room-booking-bff/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		NewCancelRequestCommands,
		NewRispatCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
		queries.NewCancelRequestQueries,
		queries.NewHistoryQueries,
		queries.NewNotificationQueries,
		queries.NewRispatQueries,
	),
)

func NewCancelRequestCommands(
	requests shared.CancelRequestGateway,
	bookings shared.BookingGateway,
	cache shared.BookingCache,
	bookingCmd commands.BookingCommands,
	feed shared.NotificationFeed,
	ref shared.ReferenceClock,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.CancelRequestCommands {
	return commands.NewCancelRequestCommands(requests, bookings, cache, bookingCmd, feed, ref, clk, cfg.CancelRequest, logger)
}

func NewRispatCommands(bookings shared.BookingGateway, rispat shared.RispatGateway, cfg config.Config) commands.RispatCommands {
	return commands.NewRispatCommands(bookings, rispat, cfg.Upstream)
}
