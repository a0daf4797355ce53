package kvstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/usecase/shared"
)

type memoryEntry struct {
	value   []byte
	expires time.Time // zero means no expiry
}

// MemoryStore keeps everything in process. State is lost on restart, which is
// fine for a single instance and for tests.
type MemoryStore struct {
	clock clock.Clock

	mu      sync.RWMutex
	entries map[string]memoryEntry
	lists   map[string][][]byte
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:   clk,
		entries: make(map[string]memoryEntry),
		lists:   make(map[string][][]byte),
	}
}

var _ shared.KVStore = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || s.expired(e) {
		return nil, shared.ErrKeyNotFound
	}
	return slices.Clone(e.value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: slices.Clone(value)}
	if ttl > 0 {
		e.expires = s.clock.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	delete(s.lists, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Push(_ context.Context, key string, value []byte, maxLen int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append([][]byte{slices.Clone(value)}, s.lists[key]...)
	if maxLen > 0 && len(list) > maxLen {
		list = list[:maxLen]
	}
	s.lists[key] = list
	return nil
}

func (s *MemoryStore) Range(_ context.Context, key string, limit int) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.lists[key]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	out := make([][]byte, len(list))
	for i, v := range list {
		out[i] = slices.Clone(v)
	}
	return out, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expires.IsZero() && !s.clock.Now().Before(e.expires)
}
