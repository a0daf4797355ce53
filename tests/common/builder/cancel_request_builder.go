//go:build unit || e2e

package builder

import (
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
)

type CancelRequestBuilder struct {
	ID              int64
	BookingID       booking.ID
	RequesterName   string
	OwnerName       string
	Reason          string
	Status          cancelrequest.Status
	ResponseMessage string
	CreatedAt       time.Time
}

func NewCancelRequestBuilder() *CancelRequestBuilder {
	return &CancelRequestBuilder{
		ID:            1,
		BookingID:     booking.FormID(42),
		RequesterName: "Bob",
		OwnerName:     "Alice",
		Reason:        "Room double-booked",
		Status:        cancelrequest.StatusPending,
		CreatedAt:     time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (b *CancelRequestBuilder) With(mutate func(*CancelRequestBuilder)) *CancelRequestBuilder {
	mutate(b)
	return b
}

func (b *CancelRequestBuilder) BuildAttributes() cancelrequest.Attributes {
	return cancelrequest.Attributes{
		ID:              b.ID,
		BookingID:       b.BookingID,
		Requester:       cancelrequest.Party{Name: b.RequesterName},
		Owner:           cancelrequest.Party{Name: b.OwnerName},
		Reason:          b.Reason,
		Status:          b.Status,
		ResponseMessage: b.ResponseMessage,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *CancelRequestBuilder) MustBuild() *cancelrequest.CancelRequest {
	r, err := cancelrequest.Reconstruct(b.BuildAttributes())
	if err != nil {
		panic(err)
	}
	return r
}

func (b *CancelRequestBuilder) WithID(id int64) *CancelRequestBuilder {
	b.ID = id
	return b
}

func (b *CancelRequestBuilder) WithParties(requester, owner string) *CancelRequestBuilder {
	b.RequesterName = requester
	b.OwnerName = owner
	return b
}

func (b *CancelRequestBuilder) WithStatus(status cancelrequest.Status) *CancelRequestBuilder {
	b.Status = status
	return b
}

func (b *CancelRequestBuilder) CreatedAtTime(t time.Time) *CancelRequestBuilder {
	b.CreatedAt = t
	return b
}
