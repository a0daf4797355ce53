package shared

import (
	"io"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"

	"github.com/google/uuid"
)

type Room struct {
	ID         int64
	Name       string
	Capacity   int
	Location   string
	Facilities []string
}

type RispatFile struct {
	ID         int64
	BookingID  int64
	FileName   string
	FileSize   int64
	MimeType   string
	UploadedBy string
	UploadedAt time.Time
}

type RispatUpload struct {
	BookingID   booking.ID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedBy  string
}

// RispatDownload must be closed by the caller.
type RispatDownload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

type ServerTime struct {
	Date     string
	Time     string
	Timezone string
}

type ReferenceSource string

const (
	ReferenceFromServer ReferenceSource = "server"
	ReferenceFromLocal  ReferenceSource = "local"
)

type ReferenceTime struct {
	Wall     booking.WallClock
	At       time.Time
	Timezone string
	Source   ReferenceSource
}

type HistoryStatus string

const (
	HistoryCompleted HistoryStatus = "completed"
	HistoryCancelled HistoryStatus = "cancelled"
)

type HistoryEntry struct {
	ID         uuid.UUID     `json:"id"`
	BookingID  booking.ID    `json:"booking_id"`
	RoomName   string        `json:"room_name"`
	Topic      string        `json:"topic"`
	Date       string        `json:"date"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time,omitempty"`
	Status     HistoryStatus `json:"status"`
	Reason     string        `json:"reason,omitempty"`
	RecordedAt time.Time     `json:"recorded_at"`
}

type SessionExpired struct {
	ActorName string
	At        time.Time
}

type NotificationSnapshot struct {
	Owner       string
	Pending     []*cancelrequest.CancelRequest
	RefreshedAt time.Time
}

func (s *NotificationSnapshot) Count() int { return len(s.Pending) }
