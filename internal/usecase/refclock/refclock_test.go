//go:build unit

package refclock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/usecase/refclock"
	"room-booking-bff/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

var jakarta = time.FixedZone("Asia/Jakarta", 7*60*60)

type fakeSource struct {
	calls atomic.Int32
	st    shared.ServerTime
	err   error
	delay time.Duration
}

func (f *fakeSource) ServerTime(ctx context.Context) (shared.ServerTime, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.st, f.err
}

func TestReference_UsesServerOffset(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 20, 0, jakarta))
	src := &fakeSource{st: shared.ServerTime{Date: "2024-01-10", Time: "09:30:00"}}
	ref := refclock.New(src, clk, jakarta, time.Minute, nil)

	got := ref.Now(context.Background())
	assert.Equal(t, shared.ReferenceFromServer, got.Source)
	assert.Equal(t, booking.WallClock{Date: "2024-01-10", Time: "09:30"}, got.Wall)

	clk.Add(10 * time.Second)
	got = ref.Now(context.Background())
	assert.Equal(t, "09:30", got.Wall.Time)
	assert.Equal(t, int32(1), src.calls.Load(), "offset is cached within the TTL")

	clk.Add(time.Minute)
	ref.Now(context.Background())
	assert.Equal(t, int32(2), src.calls.Load(), "expired offset is fetched again")
}

func TestReference_OffsetCrossesMidnight(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 9, 23, 58, 0, 0, jakarta))
	src := &fakeSource{st: shared.ServerTime{Date: "2024-01-10", Time: "00:03"}}
	ref := refclock.New(src, clk, jakarta, time.Hour, nil)

	got := ref.Now(context.Background())
	assert.Equal(t, booking.WallClock{Date: "2024-01-10", Time: "00:03"}, got.Wall)
}

func TestReference_FallsBackToLocal(t *testing.T) {
	utc := time.Date(2024, 1, 10, 2, 30, 0, 0, time.UTC)
	clk := clock.NewMockClock(utc)

	tests := []struct {
		name string
		src  *fakeSource
	}{
		{"backend error", &fakeSource{err: errors.New("connection refused")}},
		{"garbage payload", &fakeSource{st: shared.ServerTime{Date: "yesterday", Time: "noon"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := refclock.New(tt.src, clk, jakarta, time.Minute, nil)
			got := ref.Now(context.Background())

			assert.Equal(t, shared.ReferenceFromLocal, got.Source)
			assert.Equal(t, booking.WallClock{Date: "2024-01-10", Time: "09:30"}, got.Wall)
		})
	}
}

func TestReference_ConcurrentCallersShareOneFetch(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, jakarta))
	src := &fakeSource{st: shared.ServerTime{Date: "2024-01-10", Time: "09:00"}, delay: 50 * time.Millisecond}
	ref := refclock.New(src, clk, jakarta, time.Minute, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Now(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestReference_Invalidate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, jakarta))
	src := &fakeSource{st: shared.ServerTime{Date: "2024-01-10", Time: "09:00"}}
	ref := refclock.New(src, clk, jakarta, time.Hour, nil)

	ref.Now(context.Background())
	ref.Invalidate()
	ref.Now(context.Background())

	assert.Equal(t, int32(2), src.calls.Load())
}

func TestReference_FailedFetchIsNotRetriedImmediately(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, jakarta))
	src := &fakeSource{err: errors.New("connection refused"), delay: 300 * time.Millisecond}
	ref := refclock.New(src, clk, jakarta, time.Minute, nil)

	for range 5 {
		got := ref.Now(context.Background())
		assert.Equal(t, shared.ReferenceFromLocal, got.Source)
	}
	assert.Equal(t, int32(1), src.calls.Load(), "a failure is remembered while fresh")

	src.err = nil
	src.delay = 0
	src.st = shared.ServerTime{Date: "2024-01-10", Time: "09:15"}
	clk.Add(time.Minute)

	got := ref.Now(context.Background())
	assert.Equal(t, shared.ReferenceFromServer, got.Source)
	assert.Equal(t, "09:15", got.Wall.Time)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestReference_InvalidateClearsRememberedFailure(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, jakarta))
	src := &fakeSource{err: errors.New("connection refused")}
	ref := refclock.New(src, clk, jakarta, time.Hour, nil)

	ref.Now(context.Background())
	ref.Invalidate()
	ref.Now(context.Background())

	assert.Equal(t, int32(2), src.calls.Load())
}
