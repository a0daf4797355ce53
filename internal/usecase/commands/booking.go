package commands

import (
	"context"
	"log/slog"
	"strings"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCancelReasonRequired = errs.Define(errs.ErrValidation, "a reason is required to cancel a booking")

type OutcomeStatus string

const (
	OutcomeCompleted OutcomeStatus = "completed"
	OutcomeCancelled OutcomeStatus = "cancelled"
	// OutcomeAlreadyFinalized means the backend no longer had the booking as
	// active. The local copy was dropped and nothing was retried.
	OutcomeAlreadyFinalized OutcomeStatus = "already_finalized"
)

type Outcome struct {
	BookingID booking.ID
	Status    OutcomeStatus
	HistoryID uuid.UUID
}

type BookingCommands interface {
	Complete(ctx context.Context, actor user.Actor, id booking.ID) (*Outcome, error)
	Cancel(ctx context.Context, actor user.Actor, id booking.ID, reason string) (*Outcome, error)
}

type bookingCommandsImpl struct {
	bookings shared.BookingGateway
	rispat   shared.RispatGateway
	history  shared.HistoryLog
	cache    shared.BookingCache
	ref      shared.ReferenceClock
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingCommands(
	bookings shared.BookingGateway,
	rispat shared.RispatGateway,
	history shared.HistoryLog,
	cache shared.BookingCache,
	ref shared.ReferenceClock,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		rispat:   rispat,
		history:  history,
		cache:    cache,
		ref:      ref,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *bookingCommandsImpl) Complete(ctx context.Context, actor user.Actor, id booking.ID) (*Outcome, error) {
	b, err := uc.bookings.Get(ctx, id)
	if err != nil {
		return uc.reconcile(ctx, id, err)
	}

	facts := booking.Facts{Phase: b.Phase(uc.ref.Now(ctx).Wall)}
	if booking.NeedsRispatLookup(actor, b, facts.Phase) {
		files, lerr := uc.rispat.List(ctx, id)
		if lerr != nil {
			return nil, lerr
		}
		facts.RispatUploaded = len(files) > 0
	}

	if d := booking.Authorize(actor, b, booking.ActionComplete, facts); !d.Allowed {
		return uc.denied(ctx, id, d)
	}

	if err := uc.bookings.Complete(ctx, id); err != nil {
		return uc.reconcileMutation(ctx, id, err)
	}
	return uc.finalize(ctx, actor, b, shared.HistoryCompleted, ""), nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id booking.ID, reason string) (*Outcome, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrCancelReasonRequired
	}

	b, err := uc.bookings.Get(ctx, id)
	if err != nil {
		return uc.reconcile(ctx, id, err)
	}

	facts := booking.Facts{Phase: b.Phase(uc.ref.Now(ctx).Wall)}
	if d := booking.Authorize(actor, b, booking.ActionCancel, facts); !d.Allowed {
		return uc.denied(ctx, id, d)
	}

	if err := uc.bookings.Cancel(ctx, id, reason); err != nil {
		return uc.reconcileMutation(ctx, id, err)
	}
	return uc.finalize(ctx, actor, b, shared.HistoryCancelled, reason), nil
}

// reconcile turns a backend "not found" into the already-finalized outcome.
// Any other failure leaves local state untouched.
func (uc *bookingCommandsImpl) reconcile(ctx context.Context, id booking.ID, err error) (*Outcome, error) {
	if !errs.Is(err, errs.ErrNotFound) {
		return nil, err
	}
	uc.logger.Info("booking already gone upstream, dropping local copy", "booking_id", id.String())
	uc.cache.Remove(ctx, id)
	return &Outcome{BookingID: id, Status: OutcomeAlreadyFinalized}, nil
}

// reconcileMutation also accepts a conflict: the backend refusing to complete
// or cancel because the booking already is means someone else got there first.
func (uc *bookingCommandsImpl) reconcileMutation(ctx context.Context, id booking.ID, err error) (*Outcome, error) {
	if !errs.Is(err, errs.ErrConflict) {
		return uc.reconcile(ctx, id, err)
	}
	uc.logger.Info("booking finalized concurrently upstream, dropping local copy", "booking_id", id.String())
	uc.cache.Remove(ctx, id)
	return &Outcome{BookingID: id, Status: OutcomeAlreadyFinalized}, nil
}

func (uc *bookingCommandsImpl) denied(ctx context.Context, id booking.ID, d booking.Decision) (*Outcome, error) {
	if d.Reason == booking.DenyFinalized {
		uc.cache.Remove(ctx, id)
		return &Outcome{BookingID: id, Status: OutcomeAlreadyFinalized}, nil
	}
	return nil, d.Err()
}

func (uc *bookingCommandsImpl) finalize(ctx context.Context, actor user.Actor, b *booking.Booking, status shared.HistoryStatus, reason string) *Outcome {
	entry := shared.HistoryEntry{
		ID:         uuid.New(),
		BookingID:  b.ID(),
		RoomName:   b.RoomName(),
		Topic:      b.Topic(),
		Date:       b.Date(),
		StartTime:  b.StartTime(),
		EndTime:    b.EndTime(),
		Status:     status,
		Reason:     reason,
		RecordedAt: uc.clock.Now(),
	}
	// the backend already applied the change, a lost history line is not worth failing for
	if err := uc.history.Append(ctx, actor.Name(), entry); err != nil {
		uc.logger.Warn("failed to append history", "booking_id", b.ID().String(), "error", err)
	}
	uc.cache.Remove(ctx, b.ID())

	out := &Outcome{BookingID: b.ID(), HistoryID: entry.ID, Status: OutcomeCompleted}
	if status == shared.HistoryCancelled {
		out.Status = OutcomeCancelled
	}
	return out
}
