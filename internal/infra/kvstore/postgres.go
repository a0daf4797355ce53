package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    expires_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS kv_list_items (
    id         BIGSERIAL PRIMARY KEY,
    key        TEXT NOT NULL,
    value      BYTEA NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS kv_list_items_key_id_idx ON kv_list_items (key, id DESC);
`

// PostgresStore maps the KV port onto two tables. Expired rows stay until the
// key is written again; reads filter them out. Expiry is judged against the
// injected clock on both sides, never the database's now().
type PostgresStore struct {
	pool   *pgxpool.Pool
	clock  clock.Clock
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, clock: clk, logger: logger}
}

var _ shared.KVStore = (*PostgresStore)(nil)

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return s.fail("ensure schema", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_entries WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`,
		key, s.clock.Now(),
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shared.ErrKeyNotFound
	}
	if err != nil {
		return nil, s.fail("get "+key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := s.clock.Now().Add(ttl)
		expiresAt = &t
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		return s.fail("set "+key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM kv_entries WHERE key = $1`, key)
	batch.Queue(`DELETE FROM kv_list_items WHERE key = $1`, key)
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return s.fail("delete "+key, err)
	}
	return nil
}

// Push appends and trims inside one transaction so concurrent pushes never
// leave the list longer than maxLen.
func (s *PostgresStore) Push(ctx context.Context, key string, value []byte, maxLen int) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO kv_list_items (key, value) VALUES ($1, $2)`, key, value); err != nil {
			return err
		}
		if maxLen <= 0 {
			return nil
		}
		_, err := tx.Exec(ctx, `
			DELETE FROM kv_list_items
			WHERE key = $1 AND id NOT IN (
				SELECT id FROM kv_list_items WHERE key = $1 ORDER BY id DESC LIMIT $2
			)`,
			key, maxLen,
		)
		return err
	})
	if err != nil {
		return s.fail("push "+key, err)
	}
	return nil
}

func (s *PostgresStore) Range(ctx context.Context, key string, limit int) ([][]byte, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.pool.Query(ctx, `SELECT value FROM kv_list_items WHERE key = $1 ORDER BY id DESC LIMIT $2`, key, limit)
	} else {
		rows, err = s.pool.Query(ctx, `SELECT value FROM kv_list_items WHERE key = $1 ORDER BY id DESC`, key)
	}
	if err != nil {
		return nil, s.fail("range "+key, err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, s.fail("range "+key, err)
	}
	if values == nil {
		values = [][]byte{}
	}
	return values, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return s.fail("ping", err)
	}
	return nil
}

// Close is a no-op; the pool is owned by whoever opened it.
func (s *PostgresStore) Close() error { return nil }

func (s *PostgresStore) fail(op string, err error) error {
	return infra.WrapErr(s.logger, infra.KindStoreFailure, 0, "postgres "+op, err)
}
