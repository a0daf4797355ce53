//go:build unit || e2e

package builder

import (
	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/user"
)

type BookingBuilder struct {
	ID             booking.ID
	RoomName       string
	Topic          string
	Date           string
	StartTime      string
	EndTime        string
	Participants   int
	PIC            string
	MeetingType    booking.MeetingType
	Facilities     []string
	RequiresRispat bool
	State          booking.State
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           booking.FormID(42),
		RoomName:     "Ruang Rapat Merapi",
		Topic:        "Sprint planning",
		Date:         "2024-01-10",
		StartTime:    "09:00",
		EndTime:      "10:00",
		Participants: 8,
		PIC:          "Alice",
		MeetingType:  booking.MeetingInternal,
		Facilities:   []string{"projector", "whiteboard"},
		State:        booking.StateActive,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildAttributes() booking.Attributes {
	return booking.Attributes{
		ID:             b.ID,
		RoomName:       b.RoomName,
		Topic:          b.Topic,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Participants:   b.Participants,
		PIC:            b.PIC,
		MeetingType:    b.MeetingType,
		Facilities:     b.Facilities,
		RequiresRispat: b.RequiresRispat,
		State:          b.State,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.Reconstruct(b.BuildAttributes())
}

// MustBuild is for table setups where a builder error is a bug in the test itself.
func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id booking.ID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithRoomName(name string) *BookingBuilder {
	b.RoomName = name
	return b
}

func (b *BookingBuilder) WithSchedule(date, start, end string) *BookingBuilder {
	b.Date = date
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithPIC(pic string) *BookingBuilder {
	b.PIC = pic
	return b
}

func (b *BookingBuilder) WithState(state booking.State) *BookingBuilder {
	b.State = state
	return b
}

func (b *BookingBuilder) RequiringRispat() *BookingBuilder {
	b.RequiresRispat = true
	return b
}

func (b *BookingBuilder) AsAISourced(n int64) *BookingBuilder {
	b.ID = booking.AIID(n)
	return b
}

func NewActor(name string) user.Actor {
	actor, err := user.NewActor(name, "", "")
	if err != nil {
		panic(err)
	}
	return actor
}
