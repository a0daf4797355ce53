//go:build e2e

package kvstore_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"room-booking-bff/internal/infra/kvstore"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://test:testpass@%s:%s/postgres?sslmode=disable", host, port.Port())
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "postgres",
			},
			Cmd:        []string{"postgres", "-c", "fsync=off"},
			// the entrypoint restarts postgres once after init, so wait for the second line
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn(host, port))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresStore(t *testing.T) {
	pool := startPostgres(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clk := clock.NewMockClock(time.Now())

	store := kvstore.NewPostgresStore(pool, clk, logger)
	require.NoError(t, store.EnsureSchema(context.Background()))
	require.NoError(t, store.EnsureSchema(context.Background()), "schema creation is idempotent")

	runStoreContract(t, func(t *testing.T) shared.KVStore {
		_, err := pool.Exec(context.Background(), "TRUNCATE kv_entries, kv_list_items")
		require.NoError(t, err)
		return store
	}, clk.Add)
}
