//go:build unit

package booking_test

import (
	"testing"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	owner := builder.NewActor("alice")
	other := builder.NewActor("Bob")

	active := builder.NewBookingBuilder().WithPIC("Alice")
	withMinutes := builder.NewBookingBuilder().WithPIC("Alice").RequiringRispat()
	completed := builder.NewBookingBuilder().WithPIC("Alice").WithState(booking.StateCompleted)
	cancelled := builder.NewBookingBuilder().WithPIC("Alice").WithState(booking.StateCancelled)

	tests := []struct {
		name   string
		actor  string
		b      *builder.BookingBuilder
		action booking.Action
		facts  booking.Facts
		want   booking.DenyReason
	}{
		{"anyone views details", "other", cancelled, booking.ActionViewDetail, booking.Facts{Phase: booking.PhaseExpired}, booking.DenyNone},

		{"owner completes ongoing", "owner", active, booking.ActionComplete, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyNone},
		{"complete before start", "owner", active, booking.ActionComplete, booking.Facts{Phase: booking.PhaseUpcoming}, booking.DenyNotStarted},
		{"complete after end", "owner", active, booking.ActionComplete, booking.Facts{Phase: booking.PhaseExpired}, booking.DenyExpired},
		{"non owner completes", "other", active, booking.ActionComplete, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyNotOwner},
		{"complete without minutes", "owner", withMinutes, booking.ActionComplete, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyRispatRequired},
		{"complete with minutes", "owner", withMinutes, booking.ActionComplete, booking.Facts{Phase: booking.PhaseOngoing, RispatUploaded: true}, booking.DenyNone},
		{"complete finalized", "owner", completed, booking.ActionComplete, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyFinalized},

		{"owner cancels upcoming", "owner", active, booking.ActionCancel, booking.Facts{Phase: booking.PhaseUpcoming}, booking.DenyNone},
		{"owner cancels ongoing", "owner", active, booking.ActionCancel, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyNone},
		{"cancel expired", "owner", active, booking.ActionCancel, booking.Facts{Phase: booking.PhaseExpired}, booking.DenyExpired},
		{"non owner cancels", "other", active, booking.ActionCancel, booking.Facts{Phase: booking.PhaseUpcoming}, booking.DenyNotOwner},
		{"cancel cancelled", "owner", cancelled, booking.ActionCancel, booking.Facts{Phase: booking.PhaseUpcoming}, booking.DenyFinalized},

		{"non owner requests", "other", active, booking.ActionRequestCancel, booking.Facts{Phase: booking.PhaseUpcoming}, booking.DenyNone},
		{"owner requests", "owner", active, booking.ActionRequestCancel, booking.Facts{Phase: booking.PhaseUpcoming}, booking.DenyOwnerCancelsDirectly},
		{"request on expired", "other", active, booking.ActionRequestCancel, booking.Facts{Phase: booking.PhaseExpired}, booking.DenyExpired},
		{"request on completed", "other", completed, booking.ActionRequestCancel, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyFinalized},

		{"owner manages minutes", "owner", completed, booking.ActionManageRispat, booking.Facts{Phase: booking.PhaseExpired}, booking.DenyNone},
		{"non owner manages minutes", "other", active, booking.ActionManageRispat, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyNotOwner},
		{"minutes on cancelled", "owner", cancelled, booking.ActionManageRispat, booking.Facts{Phase: booking.PhaseOngoing}, booking.DenyFinalized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := owner
			if tt.actor == "other" {
				actor = other
			}
			d := booking.Authorize(actor, tt.b.MustBuild(), tt.action, tt.facts)

			assert.Equal(t, tt.action, d.Action)
			assert.Equal(t, tt.want == booking.DenyNone, d.Allowed)
			assert.Equal(t, tt.want, d.Reason)
			if d.Allowed {
				assert.NoError(t, d.Err())
			} else {
				assert.Error(t, d.Err())
			}
		})
	}
}

func TestDecision_ErrClasses(t *testing.T) {
	b := builder.NewBookingBuilder().WithPIC("Alice").WithState(booking.StateCompleted).MustBuild()
	d := booking.Authorize(builder.NewActor("alice"), b, booking.ActionCancel, booking.Facts{Phase: booking.PhaseOngoing})
	assert.True(t, errs.Is(d.Err(), errs.ErrAlreadyFinalized))

	b = builder.NewBookingBuilder().WithPIC("Alice").MustBuild()
	d = booking.Authorize(builder.NewActor("bob"), b, booking.ActionCancel, booking.Facts{Phase: booking.PhaseOngoing})
	assert.True(t, errs.Is(d.Err(), errs.ErrForbidden))
	assert.ErrorIs(t, d.Err(), booking.ErrNotOwner)
}

func TestAvailableActions(t *testing.T) {
	b := builder.NewBookingBuilder().WithPIC("Alice").MustBuild()

	mine := booking.AvailableActions(builder.NewActor("Alice"), b, booking.Facts{Phase: booking.PhaseOngoing})
	assert.True(t, mine.ViewDetail.Allowed)
	assert.True(t, mine.Complete.Allowed)
	assert.True(t, mine.Cancel.Allowed)
	assert.False(t, mine.RequestCancel.Allowed)

	theirs := booking.AvailableActions(builder.NewActor("Bob"), b, booking.Facts{Phase: booking.PhaseOngoing})
	assert.True(t, theirs.ViewDetail.Allowed)
	assert.False(t, theirs.Complete.Allowed)
	assert.False(t, theirs.Cancel.Allowed)
	assert.True(t, theirs.RequestCancel.Allowed)
}

func TestNeedsRispatLookup(t *testing.T) {
	alice := builder.NewActor("Alice")
	req := builder.NewBookingBuilder().WithPIC("Alice").RequiringRispat().MustBuild()
	plain := builder.NewBookingBuilder().WithPIC("Alice").MustBuild()

	assert.True(t, booking.NeedsRispatLookup(alice, req, booking.PhaseOngoing))
	assert.False(t, booking.NeedsRispatLookup(alice, req, booking.PhaseUpcoming))
	assert.False(t, booking.NeedsRispatLookup(builder.NewActor("Bob"), req, booking.PhaseOngoing))
	assert.False(t, booking.NeedsRispatLookup(alice, plain, booking.PhaseOngoing))
}
