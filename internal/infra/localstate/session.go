package localstate

import (
	"context"
	"sync"
	"time"

	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
)

// SessionStore remembers tokens the backend rejected so the auth middleware
// can refuse them without another round trip.
type SessionStore struct {
	store shared.KVStore
	keys  keys
	ttl   time.Duration
}

func NewSessionStore(store shared.KVStore, cfg config.StoreConfig) *SessionStore {
	return &SessionStore{store: store, keys: keys{prefix: cfg.KeyPrefix}, ttl: cfg.SessionTTL}
}

var _ shared.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	return s.store.Set(ctx, s.keys.revoked(token), []byte("1"), s.ttl)
}

func (s *SessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := s.store.Get(ctx, s.keys.revoked(token))
	switch {
	case err == nil:
		return true, nil
	case errs.Is(err, shared.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// EventBus fans session expiry out to in-process subscribers. Handlers run
// synchronously on the publisher's goroutine and must not block.
type EventBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(shared.SessionExpired)
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[int]func(shared.SessionExpired))}
}

var _ shared.SessionEvents = (*EventBus)(nil)

func (b *EventBus) Publish(e shared.SessionExpired) {
	b.mu.Lock()
	handlers := make([]func(shared.SessionExpired), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

func (b *EventBus) Subscribe(fn func(shared.SessionExpired)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}
