package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"room-booking-bff/internal/infra/db"
	"room-booking-bff/internal/infra/kvstore"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewKVStore,
	),
)

// NewKVStore opens the backend selected by STORE_DRIVER. The store is closed
// when the app stops.
func NewKVStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.KVStore, error) {
	ctx := context.Background()

	var (
		store   shared.KVStore
		cleanup func()
	)
	switch cfg.Store.Driver {
	case "", "memory":
		store = kvstore.NewMemoryStore(clk)

	case "redis":
		client, err := kvstore.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		store = kvstore.NewRedisStore(client, logger)

	case "postgres":
		pool, closePool, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		pg := kvstore.NewPostgresStore(pool, clk, logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			closePool()
			return nil, err
		}
		store, cleanup = pg, closePool

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	logger.Info("ローカルストアを初期化しました", "driver", cfg.Store.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			err := store.Close()
			if cleanup != nil {
				cleanup()
			}
			return err
		},
	})

	return store, nil
}
