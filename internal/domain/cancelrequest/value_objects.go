package cancelrequest

import (
	"strings"
	"unicode/utf8"

	"room-booking-bff/internal/pkg/errs"
)

// MaxTextLength bounds both the reason and the owner's response, counted in characters.
const MaxTextLength = 500

var (
	ErrEmptyReason     = errs.Define(errs.ErrValidation, "cancel reason is required")
	ErrReasonTooLong   = errs.Define(errs.ErrValidation, "cancel reason must be at most 500 characters")
	ErrResponseTooLong = errs.Define(errs.ErrValidation, "response message must be at most 500 characters")
	ErrInvalidDecision = errs.Define(errs.ErrValidation, "decision must be approved or rejected")
	ErrUnknownStatus   = errs.Define(errs.ErrValidation, "unknown cancel request status")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", ErrUnknownStatus
	}
}

// ParseDecision accepts only the two terminal states.
func ParseDecision(s string) (Status, error) {
	st, err := ParseStatus(s)
	if err != nil || !st.IsTerminal() {
		return "", ErrInvalidDecision
	}
	return st, nil
}

type Reason struct {
	text string
}

func NewReason(s string) (Reason, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Reason{}, ErrEmptyReason
	}
	if utf8.RuneCountInString(t) > MaxTextLength {
		return Reason{}, ErrReasonTooLong
	}
	return Reason{text: t}, nil
}

func (r Reason) String() string { return r.text }

// ResponseMessage is optional; the zero value means the owner left no message.
type ResponseMessage struct {
	text string
}

func NewResponseMessage(s string) (ResponseMessage, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxTextLength {
		return ResponseMessage{}, ErrResponseTooLong
	}
	return ResponseMessage{text: t}, nil
}

func (m ResponseMessage) String() string { return m.text }
func (m ResponseMessage) IsEmpty() bool  { return m.text == "" }
