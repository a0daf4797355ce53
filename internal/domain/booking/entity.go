package booking

import (
	"slices"
	"strings"

	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/errs"
)

var (
	ErrMissingDate  = errs.Define(errs.ErrValidation, "booking date is required")
	ErrMissingStart = errs.Define(errs.ErrValidation, "booking start time is required")
)

type Booking struct {
	id             ID
	roomName       string
	topic          string
	date           string
	startTime      string
	endTime        string
	participants   int
	pic            string
	meetingType    MeetingType
	facilities     []string
	requiresRispat bool
	state          State
}

// Attributes is the flat, serializable form of a Booking.
type Attributes struct {
	ID             ID          `json:"id"`
	RoomName       string      `json:"room_name"`
	Topic          string      `json:"topic"`
	Date           string      `json:"date"`
	StartTime      string      `json:"start_time"`
	EndTime        string      `json:"end_time,omitempty"`
	Participants   int         `json:"participants"`
	PIC            string      `json:"pic"`
	MeetingType    MeetingType `json:"meeting_type"`
	Facilities     []string    `json:"facilities,omitempty"`
	RequiresRispat bool        `json:"requires_rispat"`
	State          State       `json:"state"`
}

func Reconstruct(a Attributes) (*Booking, error) {
	if a.ID.IsZero() {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(a.Date) == "" {
		return nil, ErrMissingDate
	}
	if strings.TrimSpace(a.StartTime) == "" {
		return nil, ErrMissingStart
	}
	state := a.State
	if state == "" {
		state = StateActive
	}
	meetingType := a.MeetingType
	if meetingType == "" {
		meetingType = MeetingInternal
	}
	return &Booking{
		id:             a.ID,
		roomName:       strings.TrimSpace(a.RoomName),
		topic:          strings.TrimSpace(a.Topic),
		date:           strings.TrimSpace(a.Date),
		startTime:      NormalizeClock(a.StartTime),
		endTime:        NormalizeClock(a.EndTime),
		participants:   a.Participants,
		pic:            strings.TrimSpace(a.PIC),
		meetingType:    meetingType,
		facilities:     slices.Clone(a.Facilities),
		requiresRispat: a.RequiresRispat,
		state:          state,
	}, nil
}

func (b *Booking) Attributes() Attributes {
	return Attributes{
		ID:             b.id,
		RoomName:       b.roomName,
		Topic:          b.topic,
		Date:           b.date,
		StartTime:      b.startTime,
		EndTime:        b.endTime,
		Participants:   b.participants,
		PIC:            b.pic,
		MeetingType:    b.meetingType,
		Facilities:     slices.Clone(b.facilities),
		RequiresRispat: b.requiresRispat,
		State:          b.state,
	}
}

func (b *Booking) Phase(ref WallClock) Phase {
	return Classify(b.date, b.startTime, b.endTime, ref)
}

func (b *Booking) IsOwnedBy(actor user.Actor) bool {
	return actor.Is(b.pic)
}

func (b *Booking) IsTerminal() bool { return b.state.IsTerminal() }

func (b *Booking) ID() ID                   { return b.id }
func (b *Booking) RoomName() string         { return b.roomName }
func (b *Booking) Topic() string            { return b.topic }
func (b *Booking) Date() string             { return b.date }
func (b *Booking) StartTime() string        { return b.startTime }
func (b *Booking) EndTime() string          { return b.endTime }
func (b *Booking) Participants() int        { return b.participants }
func (b *Booking) PIC() string              { return b.pic }
func (b *Booking) MeetingType() MeetingType { return b.meetingType }
func (b *Booking) Facilities() []string     { return slices.Clone(b.facilities) }
func (b *Booking) RequiresRispat() bool     { return b.requiresRispat }
func (b *Booking) State() State             { return b.state }
