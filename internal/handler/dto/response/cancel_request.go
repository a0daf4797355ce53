package response

import (
	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/internal/usecase/queries"
)

type CancelRequestListResponse struct {
	Requests []*queries.CancelRequestView `json:"requests"`
}

func FromCancelRequestViews(views []*queries.CancelRequestView) *CancelRequestListResponse {
	if views == nil {
		views = []*queries.CancelRequestView{}
	}
	return &CancelRequestListResponse{Requests: views}
}

type RespondResponse struct {
	Request *queries.CancelRequestView `json:"request"`
	Booking *OutcomeResponse           `json:"booking,omitempty"`
	// set when approval tried to cancel the booking and that failed
	AutoCancelError string `json:"auto_cancel_error,omitempty"`
}

func FromRespondResult(view *queries.CancelRequestView, r *commands.RespondResult) *RespondResponse {
	res := &RespondResponse{Request: view}
	if r.Booking != nil {
		res.Booking = FromOutcome(r.Booking)
	}
	if r.AutoCancelErr != nil {
		res.AutoCancelError = "The request was approved but the booking could not be cancelled"
	}
	return res
}

type NotificationResponse struct {
	PendingCount int                          `json:"pending_count"`
	Pending      []*queries.CancelRequestView `json:"pending"`
	RefreshedAt  int64                        `json:"refreshed_at"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	pending := v.Pending
	if pending == nil {
		pending = []*queries.CancelRequestView{}
	}
	return &NotificationResponse{
		PendingCount: v.PendingCount,
		Pending:      pending,
		RefreshedAt:  v.RefreshedAt.Unix(),
	}
}
