package queries

import (
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/usecase/shared"
)

type ActionView struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// BookingView is a booking as one actor sees it at one reference time.
type BookingView struct {
	ID             booking.ID            `json:"id"`
	Source         string                `json:"source"`
	RoomName       string                `json:"room_name"`
	Topic          string                `json:"topic"`
	Date           string                `json:"date"`
	StartTime      string                `json:"start_time"`
	EndTime        string                `json:"end_time,omitempty"`
	Participants   int                   `json:"participants"`
	PIC            string                `json:"pic"`
	MeetingType    booking.MeetingType   `json:"meeting_type"`
	Facilities     []string              `json:"facilities"`
	RequiresRispat bool                  `json:"requires_rispat"`
	State          booking.State         `json:"state"`
	Phase          booking.Phase         `json:"phase"`
	IsOwner        bool                  `json:"is_owner"`
	RispatUploaded *bool                 `json:"rispat_uploaded,omitempty"`
	Actions        map[string]ActionView `json:"actions"`
}

type BookingList struct {
	Reference shared.ReferenceTime
	Items     []*BookingView
}

type BookingDetail struct {
	Reference shared.ReferenceTime
	Booking   *BookingView
	Files     []shared.RispatFile
}

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOngoing   RoomStatus = "ongoing"
	RoomUpcoming  RoomStatus = "upcoming"
)

type RoomSlot struct {
	BookingID booking.ID `json:"booking_id"`
	Topic     string     `json:"topic"`
	PIC       string     `json:"pic"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time,omitempty"`
}

type RoomView struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Capacity   int        `json:"capacity"`
	Location   string     `json:"location"`
	Facilities []string   `json:"facilities"`
	Status     RoomStatus `json:"status"`
	Current    *RoomSlot  `json:"current,omitempty"`
	Next       *RoomSlot  `json:"next,omitempty"`
}

type RoomList struct {
	Reference shared.ReferenceTime
	Items     []*RoomView
}

type CancelRequestView struct {
	ID                int64                `json:"id"`
	BookingID         booking.ID           `json:"booking_id"`
	BookingType       string               `json:"booking_type"`
	RequesterName     string               `json:"requester_name"`
	RequesterFullName string               `json:"requester_full_name,omitempty"`
	RequesterEmail    string               `json:"requester_email,omitempty"`
	OwnerName         string               `json:"owner_name"`
	OwnerFullName     string               `json:"owner_full_name,omitempty"`
	OwnerEmail        string               `json:"owner_email,omitempty"`
	Reason            string               `json:"reason"`
	Status            cancelrequest.Status `json:"status"`
	ResponseMessage   string               `json:"response_message,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	CanRespond        bool                 `json:"can_respond"`
}

type NotificationView struct {
	PendingCount int
	Pending      []*CancelRequestView
	RefreshedAt  time.Time
}

type HistoryPage struct {
	Items []shared.HistoryEntry
	Next  *Cursor
}
