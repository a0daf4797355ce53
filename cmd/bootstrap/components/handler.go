package components

import (
	"log/slog"

	"room-booking-bff/internal/handler"
	"room-booking-bff/internal/handler/api"
	"room-booking-bff/internal/handler/middleware"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/jwt"
	"room-booking-bff/internal/usecase/shared"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCancelRequestHandler,
		api.NewRispatHandler,
		api.NewRoomHandler,
		api.NewHistoryHandler,
		api.NewNotificationHandler,
		api.NewSystemHandler,
		NewHandlers,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	booking *api.BookingHandler,
	cancelRequest *api.CancelRequestHandler,
	rispat *api.RispatHandler,
	room *api.RoomHandler,
	history *api.HistoryHandler,
	notification *api.NotificationHandler,
	system *api.SystemHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:       booking,
		CancelRequest: cancelRequest,
		Rispat:        rispat,
		Room:          room,
		History:       history,
		Notification:  notification,
		System:        system,
	}
}

func NewAuthMiddleware(tokens *jwt.Service, sessions shared.SessionStore, cfg config.Config, logger *slog.Logger) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokens, sessions, cfg.Cookie, logger)
}
