package queries

import (
	"context"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/usecase/shared"
)

type RoomQueries interface {
	List(ctx context.Context, search string) (*RoomList, error)
}

type roomQueriesImpl struct {
	rooms    shared.RoomGateway
	bookings shared.BookingGateway
	cache    shared.BookingCache
	ref      shared.ReferenceClock
}

func NewRoomQueries(rooms shared.RoomGateway, bookings shared.BookingGateway, cache shared.BookingCache, ref shared.ReferenceClock) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, bookings: bookings, cache: cache, ref: ref}
}

func (q *roomQueriesImpl) List(ctx context.Context, search string) (*RoomList, error) {
	rooms, err := q.rooms.List(ctx, search)
	if err != nil {
		return nil, err
	}
	list, err := activeBookings(ctx, q.bookings, q.cache)
	if err != nil {
		return nil, err
	}
	ref := q.ref.Now(ctx)

	items := make([]*RoomView, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, roomStatus(r, list, ref.Wall))
	}
	return &RoomList{Reference: ref, Items: items}, nil
}

// roomStatus looks only at today's live bookings of the room. A meeting in
// progress wins over the next one to start.
func roomStatus(r shared.Room, list []*booking.Booking, ref booking.WallClock) *RoomView {
	v := &RoomView{
		ID:         r.ID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Location:   r.Location,
		Facilities: r.Facilities,
		Status:     RoomAvailable,
	}
	if v.Facilities == nil {
		v.Facilities = []string{}
	}

	var next *booking.Booking
	for _, b := range list {
		if b.IsTerminal() || b.Date() != ref.Date || !user.SameName(b.RoomName(), r.Name) {
			continue
		}
		switch b.Phase(ref) {
		case booking.PhaseOngoing:
			if v.Current == nil {
				v.Current = slotOf(b)
			}
		case booking.PhaseUpcoming:
			if next == nil || booking.ClockMinutes(b.StartTime()) < booking.ClockMinutes(next.StartTime()) {
				next = b
			}
		}
	}
	if next != nil {
		v.Next = slotOf(next)
	}

	switch {
	case v.Current != nil:
		v.Status = RoomOngoing
	case v.Next != nil:
		v.Status = RoomUpcoming
	}
	return v
}

func slotOf(b *booking.Booking) *RoomSlot {
	return &RoomSlot{
		BookingID: b.ID(),
		Topic:     b.Topic(),
		PIC:       b.PIC(),
		StartTime: b.StartTime(),
		EndTime:   b.EndTime(),
	}
}
