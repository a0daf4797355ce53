package response

import (
	"time"

	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/internal/usecase/queries"
	"room-booking-bff/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReferenceTimeResponse struct {
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Timezone string    `json:"timezone"`
	Source   string    `json:"source"`
	At       time.Time `json:"at"`
}

func FromReferenceTime(r shared.ReferenceTime) ReferenceTimeResponse {
	return ReferenceTimeResponse{
		Date:     r.Wall.Date,
		Time:     r.Wall.Time,
		Timezone: r.Timezone,
		Source:   string(r.Source),
		At:       r.At,
	}
}

type BookingListResponse struct {
	Reference ReferenceTimeResponse  `json:"reference"`
	Bookings  []*queries.BookingView `json:"bookings"`
}

func FromBookingList(l *queries.BookingList) *BookingListResponse {
	items := l.Items
	if items == nil {
		items = []*queries.BookingView{}
	}
	return &BookingListResponse{Reference: FromReferenceTime(l.Reference), Bookings: items}
}

type BookingDetailResponse struct {
	Reference ReferenceTimeResponse `json:"reference"`
	Booking   *queries.BookingView  `json:"booking"`
	Files     []*RispatFileResponse `json:"files"`
}

func FromBookingDetail(d *queries.BookingDetail) *BookingDetailResponse {
	return &BookingDetailResponse{
		Reference: FromReferenceTime(d.Reference),
		Booking:   d.Booking,
		Files:     FromRispatFiles(d.Files),
	}
}

type OutcomeResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	HistoryID string `json:"history_id,omitempty"`
}

func FromOutcome(o *commands.Outcome) *OutcomeResponse {
	res := &OutcomeResponse{
		BookingID: o.BookingID.String(),
		Status:    string(o.Status),
	}
	if o.HistoryID != uuid.Nil {
		res.HistoryID = o.HistoryID.String()
	}
	return res
}
