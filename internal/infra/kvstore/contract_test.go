//go:build unit || e2e

package kvstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"room-booking-bff/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behavior every KV store must share. advance
// moves the store's notion of time forward; nil skips the expiry checks.
func runStoreContract(t *testing.T, newStore func(t *testing.T) shared.KVStore, advance func(time.Duration)) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, shared.ErrKeyNotFound)
	})

	t.Run("set, get, overwrite, delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", []byte("v1"), 0))
		require.NoError(t, s.Set(ctx, "k", []byte("v2"), 0))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)

		require.NoError(t, s.Delete(ctx, "k"))
		_, err = s.Get(ctx, "k")
		assert.ErrorIs(t, err, shared.ErrKeyNotFound)
	})

	t.Run("delete missing key is fine", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(ctx, "nothing-here"))
	})

	if advance != nil {
		t.Run("ttl expiry", func(t *testing.T) {
			s := newStore(t)
			require.NoError(t, s.Set(ctx, "short", []byte("x"), time.Minute))
			require.NoError(t, s.Set(ctx, "forever", []byte("y"), 0))

			advance(61 * time.Second)

			_, err := s.Get(ctx, "short")
			assert.ErrorIs(t, err, shared.ErrKeyNotFound)
			got, err := s.Get(ctx, "forever")
			require.NoError(t, err)
			assert.Equal(t, []byte("y"), got)
		})
	}

	t.Run("push keeps newest first and trims", func(t *testing.T) {
		s := newStore(t)
		for i := 1; i <= 5; i++ {
			require.NoError(t, s.Push(ctx, "list", []byte(fmt.Sprintf("e%d", i)), 3))
		}

		all, err := s.Range(ctx, "list", 0)
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("e5"), []byte("e4"), []byte("e3")}, all)

		two, err := s.Range(ctx, "list", 2)
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("e5"), []byte("e4")}, two)
	})

	t.Run("range of missing list is empty", func(t *testing.T) {
		s := newStore(t)
		got, err := s.Range(ctx, "none", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("lists are per key and deleted with the key", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Push(ctx, "a", []byte("1"), 0))
		require.NoError(t, s.Push(ctx, "b", []byte("2"), 0))
		require.NoError(t, s.Delete(ctx, "a"))

		a, err := s.Range(ctx, "a", 0)
		require.NoError(t, err)
		assert.Empty(t, a)
		b, err := s.Range(ctx, "b", 0)
		require.NoError(t, err)
		assert.Len(t, b, 1)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
