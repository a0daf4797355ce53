package commands

import (
	"context"
	"fmt"
	"log/slog"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"
)

var ErrCancelRequestNotFound = errs.Define(errs.ErrNotFound, "cancel request not found")

type RespondResult struct {
	Request *cancelrequest.CancelRequest
	// Booking is set when approval also cancelled the booking.
	Booking *Outcome
	// AutoCancelErr reports a failed follow-up cancellation. The decision
	// itself was recorded.
	AutoCancelErr error
}

type CancelRequestCommands interface {
	Create(ctx context.Context, actor user.Actor, bookingID booking.ID, reason string) (*cancelrequest.CancelRequest, error)
	Respond(ctx context.Context, actor user.Actor, requestID int64, decision, message string) (*RespondResult, error)
}

type cancelRequestCommandsImpl struct {
	requests   shared.CancelRequestGateway
	bookings   shared.BookingGateway
	cache      shared.BookingCache
	bookingCmd BookingCommands
	feed       shared.NotificationFeed
	ref        shared.ReferenceClock
	clock      clock.Clock
	autoCancel bool
	logger     *slog.Logger
}

func NewCancelRequestCommands(
	requests shared.CancelRequestGateway,
	bookings shared.BookingGateway,
	cache shared.BookingCache,
	bookingCmd BookingCommands,
	feed shared.NotificationFeed,
	ref shared.ReferenceClock,
	clk clock.Clock,
	cfg config.CancelRequestConfig,
	logger *slog.Logger,
) CancelRequestCommands {
	return &cancelRequestCommandsImpl{
		requests:   requests,
		bookings:   bookings,
		cache:      cache,
		bookingCmd: bookingCmd,
		feed:       feed,
		ref:        ref,
		clock:      clk,
		autoCancel: cfg.AutoCancelOnApprove,
		logger:     logger,
	}
}

func (uc *cancelRequestCommandsImpl) Create(ctx context.Context, actor user.Actor, bookingID booking.ID, reason string) (*cancelrequest.CancelRequest, error) {
	if _, err := cancelrequest.NewReason(reason); err != nil {
		return nil, err
	}

	b, err := uc.lookup(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	facts := booking.Facts{Phase: b.Phase(uc.ref.Now(ctx).Wall)}
	if d := booking.Authorize(actor, b, booking.ActionRequestCancel, facts); !d.Allowed {
		if d.Reason == booking.DenyOwnerCancelsDirectly {
			return nil, cancelrequest.ErrSelfRequest
		}
		return nil, d.Err()
	}

	req, err := cancelrequest.New(b.ID(), actor, b.PIC(), reason, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.requests.Create(ctx, req)
}

// lookup prefers the cached listing so a request the actor may not make is
// refused without a round trip.
func (uc *cancelRequestCommandsImpl) lookup(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	if list, ok := uc.cache.Load(ctx); ok {
		for _, b := range list {
			if b.ID() == id {
				return b, nil
			}
		}
	}
	return uc.bookings.Get(ctx, id)
}

func (uc *cancelRequestCommandsImpl) Respond(ctx context.Context, actor user.Actor, requestID int64, decision, message string) (*RespondResult, error) {
	status, err := cancelrequest.ParseDecision(decision)
	if err != nil {
		return nil, err
	}
	if _, err := cancelrequest.NewResponseMessage(message); err != nil {
		return nil, err
	}

	list, err := uc.requests.ListByOwner(ctx, actor.Name())
	if err != nil {
		return nil, err
	}
	req, ok := cancelrequest.Find(list, requestID)
	if !ok {
		return nil, ErrCancelRequestNotFound
	}
	if err := req.CheckResponder(actor); err != nil {
		return nil, err
	}
	if err := req.Respond(status, message, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.requests.Respond(ctx, req.ID(), req.Status(), req.ResponseMessage().String()); err != nil {
		if errs.Is(err, errs.ErrConflict) {
			return nil, errs.Mark(err, cancelrequest.ErrAlreadyResolved)
		}
		return nil, err
	}
	uc.feed.Refresh(ctx)

	result := &RespondResult{Request: req}
	if status == cancelrequest.StatusApproved && uc.autoCancel {
		out, cerr := uc.bookingCmd.Cancel(ctx, actor, req.BookingID(), approvalReason(req))
		if cerr != nil {
			uc.logger.Warn("cancel after approval failed", "request_id", req.ID(), "booking_id", req.BookingID().String(), "error", cerr)
			result.AutoCancelErr = cerr
		}
		result.Booking = out
	}
	return result, nil
}

func approvalReason(req *cancelrequest.CancelRequest) string {
	return fmt.Sprintf("Cancel request #%d from %s approved: %s", req.ID(), req.Requester().Name, req.Reason())
}
