package queries

import (
	"context"
	"log/slog"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/ptr"
	"room-booking-bff/internal/usecase/shared"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

const rispatLookupConcurrency = 4

type BookingQueries interface {
	List(ctx context.Context, actor user.Actor) (*BookingList, error)
	Get(ctx context.Context, actor user.Actor, id booking.ID) (*BookingDetail, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingGateway
	rispat   shared.RispatGateway
	cache    shared.BookingCache
	ref      shared.ReferenceClock
	logger   *slog.Logger
}

func NewBookingQueries(
	bookings shared.BookingGateway,
	rispat shared.RispatGateway,
	cache shared.BookingCache,
	ref shared.ReferenceClock,
	logger *slog.Logger,
) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, rispat: rispat, cache: cache, ref: ref, logger: logger}
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor) (*BookingList, error) {
	list, err := activeBookings(ctx, q.bookings, q.cache)
	if err != nil {
		return nil, err
	}
	ref := q.ref.Now(ctx)

	facts := make([]booking.Facts, len(list))
	uploaded := make([]*bool, len(list))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rispatLookupConcurrency)
	for i, b := range list {
		facts[i].Phase = b.Phase(ref.Wall)
		if !booking.NeedsRispatLookup(actor, b, facts[i].Phase) {
			continue
		}
		g.Go(func() error {
			files, lerr := q.rispat.List(gctx, b.ID())
			if lerr != nil {
				// the complete button just stays disabled
				q.logger.Warn("meeting minutes lookup failed", "booking_id", b.ID().String(), "error", lerr)
				return nil
			}
			facts[i].RispatUploaded = len(files) > 0
			uploaded[i] = ptr.Of(facts[i].RispatUploaded)
			return nil
		})
	}
	_ = g.Wait()

	items := make([]*BookingView, 0, len(list))
	for i, b := range list {
		v := toBookingView(actor, b, facts[i])
		v.RispatUploaded = uploaded[i]
		items = append(items, v)
	}
	return &BookingList{Reference: ref, Items: items}, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, actor user.Actor, id booking.ID) (*BookingDetail, error) {
	b, err := q.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ref := q.ref.Now(ctx)

	files, err := q.rispat.List(ctx, id)
	if err != nil {
		q.logger.Warn("meeting minutes lookup failed", "booking_id", id.String(), "error", err)
		files = nil
	}
	if files == nil {
		files = []shared.RispatFile{}
	}

	facts := booking.Facts{Phase: b.Phase(ref.Wall), RispatUploaded: len(files) > 0}
	v := toBookingView(actor, b, facts)
	if err == nil {
		v.RispatUploaded = ptr.Of(facts.RispatUploaded)
	}
	return &BookingDetail{Reference: ref, Booking: v, Files: files}, nil
}

// activeBookings serves the listing from cache when possible.
func activeBookings(ctx context.Context, gateway shared.BookingGateway, cache shared.BookingCache) ([]*booking.Booking, error) {
	if list, ok := cache.Load(ctx); ok {
		return list, nil
	}
	list, err := gateway.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	cache.Store(ctx, list)
	return list, nil
}

func toBookingView(actor user.Actor, b *booking.Booking, facts booking.Facts) *BookingView {
	v := &BookingView{}
	_ = copier.Copy(v, b.Attributes())
	v.ID = b.ID()
	v.Source = b.ID().Source().Tag()
	if v.Facilities == nil {
		v.Facilities = []string{}
	}
	v.Phase = facts.Phase
	v.IsOwner = b.IsOwnedBy(actor)

	set := booking.AvailableActions(actor, b, facts)
	v.Actions = make(map[string]ActionView, 4)
	for _, d := range []booking.Decision{set.ViewDetail, set.Complete, set.Cancel, set.RequestCancel} {
		v.Actions[string(d.Action)] = ActionView{Allowed: d.Allowed, Reason: string(d.Reason)}
	}
	return v
}
