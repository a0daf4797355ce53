// Package refclock provides the reference "now" used to classify bookings.
//
// The backend's wall clock is authoritative. Its offset from the local clock
// is fetched lazily, shared by concurrent callers and reused for a TTL. When
// the backend cannot be reached the local clock, rendered in the booking
// zone, is used instead, and the failure is remembered for a short while so
// every request does not wait on a dead backend.
package refclock

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

const (
	fetchTimeout = 5 * time.Second
	// a failed fetch is not retried before this, capped by the TTL
	failureBackoff = 30 * time.Second
)

type Reference struct {
	source shared.ServerTimeSource
	clock  clock.Clock
	loc    *time.Location
	ttl    time.Duration
	logger *slog.Logger

	group singleflight.Group

	mu        sync.RWMutex
	offset    time.Duration
	fetchedAt time.Time
	hasOffset bool
	failedAt  time.Time
	failed    bool
}

func New(source shared.ServerTimeSource, clk clock.Clock, loc *time.Location, ttl time.Duration, logger *slog.Logger) *Reference {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reference{source: source, clock: clk, loc: loc, ttl: ttl, logger: logger}
}

var _ shared.ReferenceClock = (*Reference)(nil)

func (r *Reference) Now(ctx context.Context) shared.ReferenceTime {
	local := r.clock.Now().In(r.loc)

	offset, ok, fresh := r.cachedOffset(local)
	if !fresh {
		offset, ok = r.refresh(ctx)
	}
	if !ok {
		return r.reference(local, shared.ReferenceFromLocal)
	}
	return r.reference(local.Add(offset), shared.ReferenceFromServer)
}

func (r *Reference) reference(at time.Time, src shared.ReferenceSource) shared.ReferenceTime {
	return shared.ReferenceTime{
		Wall:     booking.WallClockAt(at),
		At:       at,
		Timezone: r.loc.String(),
		Source:   src,
	}
}

// cachedOffset reports the offset to use and whether the last attempt is
// still fresh. A recent failure is fresh with ok=false so callers stay on the
// local clock instead of asking the backend again.
func (r *Reference) cachedOffset(now time.Time) (offset time.Duration, ok, fresh bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.failed && now.Sub(r.failedAt) < min(r.ttl, failureBackoff) {
		return 0, false, true
	}
	if !r.hasOffset || now.Sub(r.fetchedAt) >= r.ttl {
		return 0, false, false
	}
	return r.offset, true, true
}

// Invalidate forces the next Now to ask the backend again.
func (r *Reference) Invalidate() {
	r.mu.Lock()
	r.hasOffset, r.failed = false, false
	r.mu.Unlock()
}

func (r *Reference) refresh(ctx context.Context) (time.Duration, bool) {
	ch := r.group.DoChan("server_time", func() (any, error) {
		// the first caller's deadline must not cut the fetch short for the others
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		st, err := r.source.ServerTime(fctx)
		local := r.clock.Now().In(r.loc)
		if err != nil {
			r.markFailed(local)
			return nil, err
		}
		server, err := parseServerTime(st, r.loc)
		if err != nil {
			r.markFailed(local)
			return nil, err
		}
		offset := server.Sub(local.Truncate(time.Minute))

		r.mu.Lock()
		r.offset, r.fetchedAt, r.hasOffset = offset, local, true
		r.failed = false
		r.mu.Unlock()
		return offset, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			r.logger.Warn("server time unavailable, using local clock", "error", res.Err)
			return 0, false
		}
		return res.Val.(time.Duration), true
	case <-ctx.Done():
		return 0, false
	}
}

func (r *Reference) markFailed(at time.Time) {
	r.mu.Lock()
	r.failedAt, r.failed = at, true
	r.mu.Unlock()
}

var ErrBadServerTime = errs.Define(errs.ErrMalformedResponse, "unparseable server time")

func parseServerTime(st shared.ServerTime, loc *time.Location) (time.Time, error) {
	clockPart := booking.NormalizeClock(st.Time)
	t, err := time.ParseInLocation(booking.DateLayout+" "+booking.ClockLayout, strings.TrimSpace(st.Date)+" "+clockPart, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrBadServerTime)
	}
	return t, nil
}
