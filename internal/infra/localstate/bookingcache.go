package localstate

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
)

type cachedListing struct {
	StoredAt time.Time            `json:"stored_at"`
	Items    []booking.Attributes `json:"items"`
}

// BookingCache holds the active listing for a short TTL. Removing an item
// keeps the original expiry so evictions never extend staleness.
type BookingCache struct {
	store  shared.KVStore
	keys   keys
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger

	// serializes read-modify-write in Remove within this process
	mu sync.Mutex
}

func NewBookingCache(store shared.KVStore, cfg config.StoreConfig, clk clock.Clock, logger *slog.Logger) *BookingCache {
	return &BookingCache{
		store:  store,
		keys:   keys{prefix: cfg.KeyPrefix},
		ttl:    cfg.BookingListTTL,
		clock:  clk,
		logger: logger,
	}
}

var _ shared.BookingCache = (*BookingCache)(nil)

func (c *BookingCache) Load(ctx context.Context) ([]*booking.Booking, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	listing, ok := c.read(ctx)
	if !ok {
		return nil, false
	}
	out := make([]*booking.Booking, 0, len(listing.Items))
	for _, a := range listing.Items {
		b, err := booking.Reconstruct(a)
		if err != nil {
			c.logger.Warn("discarding unreadable booking cache", "error", err)
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}

func (c *BookingCache) Store(ctx context.Context, list []*booking.Booking) {
	if c.ttl <= 0 {
		return
	}
	items := make([]booking.Attributes, 0, len(list))
	for _, b := range list {
		items = append(items, b.Attributes())
	}
	c.write(ctx, cachedListing{StoredAt: c.clock.Now(), Items: items})
}

func (c *BookingCache) Remove(ctx context.Context, id booking.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	listing, ok := c.read(ctx)
	if !ok {
		return
	}
	kept := listing.Items[:0]
	for _, a := range listing.Items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	listing.Items = kept
	c.write(ctx, listing)
}

func (c *BookingCache) read(ctx context.Context) (cachedListing, bool) {
	data, err := c.store.Get(ctx, c.keys.activeBookings())
	if err != nil {
		if !errs.Is(err, shared.ErrKeyNotFound) {
			c.logger.Warn("booking cache read failed", "error", err)
		}
		return cachedListing{}, false
	}
	var listing cachedListing
	if err := json.Unmarshal(data, &listing); err != nil {
		c.logger.Warn("discarding unreadable booking cache", "error", err)
		return cachedListing{}, false
	}
	if c.remaining(listing) <= 0 {
		return cachedListing{}, false
	}
	return listing, true
}

func (c *BookingCache) write(ctx context.Context, listing cachedListing) {
	ttl := c.remaining(listing)
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(listing)
	if err != nil {
		c.logger.Warn("booking cache encode failed", "error", err)
		return
	}
	if err := c.store.Set(ctx, c.keys.activeBookings(), data, ttl); err != nil {
		c.logger.Warn("booking cache write failed", "error", err)
	}
}

func (c *BookingCache) remaining(listing cachedListing) time.Duration {
	return c.ttl - c.clock.Now().Sub(listing.StoredAt)
}
