package request

import (
	"strconv"
	"strings"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/pkg/errs"
)

var ErrInvalidFileID = errs.Define(errs.ErrValidation, "invalid file id")

// Reason length is enforced by the domain so the limit lives in one place.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type CreateCancelRequestRequest struct {
	Reason string `json:"reason"`
}

type RespondCancelRequestRequest struct {
	Status          string `json:"status" binding:"required"`
	ResponseMessage string `json:"response_message"`
}

func ParseBookingID(raw string) (booking.ID, error) {
	return booking.ParseID(raw)
}

func ParsePositiveID(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidFileID
	}
	return n, nil
}
