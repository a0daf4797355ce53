package bootstrap

import (
	"time"

	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewLocation,
		clock.NewRealClock,
	),
)

// NewLocation is the zone every wall-clock comparison happens in.
func NewLocation(cfg config.Config) *time.Location {
	return clock.LoadLocation(cfg.Clock.TimeZone, cfg.Clock.TimeZoneOffset)
}
