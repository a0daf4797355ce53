package cancelrequest

import (
	"strings"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/errs"
)

var (
	ErrSelfRequest     = errs.Define(errs.ErrForbidden, "you cannot request cancellation of your own booking")
	ErrNotAddressee    = errs.Define(errs.ErrForbidden, "only the booking PIC may respond to this request")
	ErrAlreadyResolved = errs.Define(errs.ErrConflict, "cancel request has already been answered")
	ErrInvalidRequest  = errs.Define(errs.ErrValidation, "invalid cancel request")
)

// Party identifies a person by display name. FullName and Email are optional extras.
type Party struct {
	Name     string
	FullName string
	Email    string
}

func PartyOf(a user.Actor) Party {
	return Party{Name: a.Name(), FullName: a.FullName(), Email: a.Email()}
}

type CancelRequest struct {
	id              int64
	bookingID       booking.ID
	requester       Party
	owner           Party
	reason          Reason
	status          Status
	responseMessage ResponseMessage
	createdAt       time.Time
	updatedAt       time.Time
}

// New builds the pending request a non-owner submits. The id stays zero until
// the backend assigns one.
func New(bookingID booking.ID, requester user.Actor, ownerName, reasonText string, now time.Time) (*CancelRequest, error) {
	if bookingID.IsZero() {
		return nil, booking.ErrInvalidID
	}
	if requester.IsZero() {
		return nil, user.ErrEmptyName
	}
	if user.SameName(requester.Name(), ownerName) {
		return nil, ErrSelfRequest
	}
	reason, err := NewReason(reasonText)
	if err != nil {
		return nil, err
	}
	return &CancelRequest{
		bookingID: bookingID,
		requester: PartyOf(requester),
		owner:     Party{Name: strings.TrimSpace(ownerName)},
		reason:    reason,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type Attributes struct {
	ID              int64
	BookingID       booking.ID
	Requester       Party
	Owner           Party
	Reason          string
	Status          Status
	ResponseMessage string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Reconstruct restores a request read from the backend. Stored text is trusted
// as-is, only identity and status are checked.
func Reconstruct(a Attributes) (*CancelRequest, error) {
	if a.ID <= 0 || a.BookingID.IsZero() {
		return nil, ErrInvalidRequest
	}
	status := a.Status
	if status == "" {
		status = StatusPending
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return &CancelRequest{
		id:              a.ID,
		bookingID:       a.BookingID,
		requester:       trimParty(a.Requester),
		owner:           trimParty(a.Owner),
		reason:          Reason{text: strings.TrimSpace(a.Reason)},
		status:          status,
		responseMessage: ResponseMessage{text: strings.TrimSpace(a.ResponseMessage)},
		createdAt:       a.CreatedAt,
		updatedAt:       a.UpdatedAt,
	}, nil
}

func trimParty(p Party) Party {
	return Party{
		Name:     strings.TrimSpace(p.Name),
		FullName: strings.TrimSpace(p.FullName),
		Email:    strings.TrimSpace(p.Email),
	}
}

// CheckResponder returns ErrNotAddressee unless actor is the booking owner
// the request was addressed to.
func (r *CancelRequest) CheckResponder(actor user.Actor) error {
	if !actor.Is(r.owner.Name) {
		return ErrNotAddressee
	}
	return nil
}

// Respond performs the single terminal transition. A request that already left
// pending is left untouched.
func (r *CancelRequest) Respond(decision Status, message string, now time.Time) error {
	if !decision.IsTerminal() {
		return ErrInvalidDecision
	}
	msg, err := NewResponseMessage(message)
	if err != nil {
		return err
	}
	if r.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	r.status = decision
	r.responseMessage = msg
	r.updatedAt = now
	return nil
}

func (r *CancelRequest) Attributes() Attributes {
	return Attributes{
		ID:              r.id,
		BookingID:       r.bookingID,
		Requester:       r.requester,
		Owner:           r.owner,
		Reason:          r.reason.String(),
		Status:          r.status,
		ResponseMessage: r.responseMessage.String(),
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.updatedAt,
	}
}

func (r *CancelRequest) IsPending() bool { return r.status == StatusPending }

func (r *CancelRequest) ID() int64                        { return r.id }
func (r *CancelRequest) BookingID() booking.ID            { return r.bookingID }
func (r *CancelRequest) BookingType() string              { return r.bookingID.Source().Tag() }
func (r *CancelRequest) Requester() Party                 { return r.requester }
func (r *CancelRequest) Owner() Party                     { return r.owner }
func (r *CancelRequest) Reason() Reason                   { return r.reason }
func (r *CancelRequest) Status() Status                   { return r.status }
func (r *CancelRequest) ResponseMessage() ResponseMessage { return r.responseMessage }
func (r *CancelRequest) CreatedAt() time.Time             { return r.createdAt }
func (r *CancelRequest) UpdatedAt() time.Time             { return r.updatedAt }
