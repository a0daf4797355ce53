package components

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"room-booking-bff/internal/infra/localstate"
	"room-booking-bff/internal/infra/upstream"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/usecase/notification"
	"room-booking-bff/internal/usecase/refclock"
	"room-booking-bff/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	localstateModule,
	upstreamModule,
	backgroundModule,
)

var localstateModule = fx.Module("infra/localstate",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			localstate.NewEventBus,
			fx.As(new(shared.SessionEvents)),
		),
		fx.Annotate(
			NewHistoryLog,
			fx.As(new(shared.HistoryLog)),
		),
		fx.Annotate(
			NewBookingCache,
			fx.As(new(shared.BookingCache)),
		),
	),
)

var upstreamModule = fx.Module("infra/upstream",
	fx.Provide(
		NewHTTPClient,
		NewUpstreamClient,
		fx.Annotate(
			upstream.NewBookingGateway,
			fx.As(new(shared.BookingGateway)),
		),
		fx.Annotate(
			upstream.NewCancelRequestGateway,
			fx.As(new(shared.CancelRequestGateway)),
		),
		fx.Annotate(
			upstream.NewRispatGateway,
			fx.As(new(shared.RispatGateway)),
		),
		fx.Annotate(
			upstream.NewRoomGateway,
			fx.As(new(shared.RoomGateway)),
		),
		fx.Annotate(
			upstream.NewServerTimeSource,
			fx.As(new(shared.ServerTimeSource)),
		),
	),
)

var backgroundModule = fx.Module("infra/background",
	fx.Provide(
		fx.Annotate(
			NewReferenceClock,
			fx.As(new(shared.ReferenceClock)),
		),
		notification.NewGatewaySource,
		fx.Annotate(
			NewPoller,
			fx.As(fx.Self(), new(shared.NotificationFeed)),
		),
	),
	fx.Invoke(startPoller),
)

func NewSessionStore(store shared.KVStore, cfg config.Config) *localstate.SessionStore {
	return localstate.NewSessionStore(store, cfg.Store)
}

func NewHistoryLog(store shared.KVStore, cfg config.Config, logger *slog.Logger) *localstate.HistoryLog {
	return localstate.NewHistoryLog(store, cfg.Store, cfg.History, logger)
}

func NewBookingCache(store shared.KVStore, cfg config.Config, clk clock.Clock, logger *slog.Logger) *localstate.BookingCache {
	return localstate.NewBookingCache(store, cfg.Store, clk, logger)
}

// NewHTTPClient carries no overall timeout; each upstream call sets its own.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	transport.IdleConnTimeout = 90 * time.Second
	return &http.Client{Transport: transport}
}

func NewUpstreamClient(
	cfg config.Config,
	httpClient *http.Client,
	sessions shared.SessionStore,
	events shared.SessionEvents,
	clk clock.Clock,
	logger *slog.Logger,
) (*upstream.Client, error) {
	return upstream.NewClient(cfg.Upstream, httpClient, sessions, events, clk, logger)
}

func NewReferenceClock(source shared.ServerTimeSource, clk clock.Clock, loc *time.Location, cfg config.Config, logger *slog.Logger) *refclock.Reference {
	return refclock.New(source, clk, loc, cfg.Clock.ServerTimeTTL, logger)
}

func NewPoller(source notification.Source, clk clock.Clock, cfg config.Config, logger *slog.Logger) *notification.Poller {
	return notification.NewPoller(source, clk, cfg.Notification, logger)
}

func startPoller(lc fx.Lifecycle, poller *notification.Poller, events shared.SessionEvents) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			poller.Start(events)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return poller.Stop(ctx)
		},
	})
}
