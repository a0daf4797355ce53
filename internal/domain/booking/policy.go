package booking

import (
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/errs"
)

type Action string

const (
	ActionViewDetail    Action = "view_detail"
	ActionComplete      Action = "complete"
	ActionCancel        Action = "cancel"
	ActionRequestCancel Action = "request_cancel"
	ActionManageRispat  Action = "manage_rispat"
)

type DenyReason string

const (
	DenyNone                 DenyReason = ""
	DenyNotOwner             DenyReason = "not_owner"
	DenyOwnerCancelsDirectly DenyReason = "owner_cancels_directly"
	DenyNotStarted           DenyReason = "not_started"
	DenyExpired              DenyReason = "expired"
	DenyRispatRequired       DenyReason = "rispat_required"
	DenyFinalized            DenyReason = "finalized"
)

var (
	ErrNotOwner             = errs.Define(errs.ErrForbidden, "only the booking PIC may do this")
	ErrOwnerCancelsDirectly = errs.Define(errs.ErrForbidden, "the booking PIC cancels directly instead of requesting")
	ErrNotStarted           = errs.Define(errs.ErrForbidden, "meeting has not started yet")
	ErrMeetingExpired       = errs.Define(errs.ErrForbidden, "meeting is already over")
	ErrRispatRequired       = errs.Define(errs.ErrForbidden, "meeting minutes must be uploaded before completing")
	ErrBookingFinalized     = errs.Define(errs.ErrAlreadyFinalized, "booking is already completed or cancelled")
)

// Facts are the derived inputs an authorization decision needs beyond the
// booking itself.
type Facts struct {
	Phase Phase
	// RispatUploaded is only consulted for ActionComplete on bookings that require minutes.
	RispatUploaded bool
}

type Decision struct {
	Action  Action
	Allowed bool
	Reason  DenyReason
}

func allow(a Action) Decision { return Decision{Action: a, Allowed: true} }

func deny(a Action, r DenyReason) Decision { return Decision{Action: a, Reason: r} }

// Err is nil for allowed decisions.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case DenyNotOwner:
		return ErrNotOwner
	case DenyOwnerCancelsDirectly:
		return ErrOwnerCancelsDirectly
	case DenyNotStarted:
		return ErrNotStarted
	case DenyExpired:
		return ErrMeetingExpired
	case DenyRispatRequired:
		return ErrRispatRequired
	case DenyFinalized:
		return ErrBookingFinalized
	default:
		return errs.ErrForbidden
	}
}

// Authorize is the single place that decides whether actor may perform action
// on b. Ownership is the case-insensitive match between the actor's name and
// the booking PIC.
func Authorize(actor user.Actor, b *Booking, action Action, facts Facts) Decision {
	if action == ActionViewDetail {
		return allow(action)
	}

	owner := b.IsOwnedBy(actor)

	if action == ActionManageRispat {
		if !owner {
			return deny(action, DenyNotOwner)
		}
		if b.State() == StateCancelled {
			return deny(action, DenyFinalized)
		}
		return allow(action)
	}

	if b.IsTerminal() {
		return deny(action, DenyFinalized)
	}

	switch action {
	case ActionComplete:
		switch {
		case !owner:
			return deny(action, DenyNotOwner)
		case facts.Phase == PhaseUpcoming:
			return deny(action, DenyNotStarted)
		case facts.Phase == PhaseExpired:
			return deny(action, DenyExpired)
		case b.RequiresRispat() && !facts.RispatUploaded:
			return deny(action, DenyRispatRequired)
		}
		return allow(action)

	case ActionCancel:
		switch {
		case !owner:
			return deny(action, DenyNotOwner)
		case facts.Phase == PhaseExpired:
			return deny(action, DenyExpired)
		}
		return allow(action)

	case ActionRequestCancel:
		switch {
		case owner:
			return deny(action, DenyOwnerCancelsDirectly)
		case facts.Phase == PhaseExpired:
			return deny(action, DenyExpired)
		}
		return allow(action)
	}

	return deny(action, DenyNotOwner)
}

// ActionSet is what the UI renders for a booking card: every action with its
// enabled flag and, when disabled, the reason.
type ActionSet struct {
	ViewDetail    Decision
	Complete      Decision
	Cancel        Decision
	RequestCancel Decision
}

func AvailableActions(actor user.Actor, b *Booking, facts Facts) ActionSet {
	return ActionSet{
		ViewDetail:    Authorize(actor, b, ActionViewDetail, facts),
		Complete:      Authorize(actor, b, ActionComplete, facts),
		Cancel:        Authorize(actor, b, ActionCancel, facts),
		RequestCancel: Authorize(actor, b, ActionRequestCancel, facts),
	}
}

// NeedsRispatLookup reports whether the complete button depends on the
// minutes listing, so callers only hit the upstream when it matters.
func NeedsRispatLookup(actor user.Actor, b *Booking, phase Phase) bool {
	return b.RequiresRispat() && !b.IsTerminal() && phase == PhaseOngoing && b.IsOwnedBy(actor)
}
