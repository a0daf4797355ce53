package user

import (
	"strings"

	"room-booking-bff/internal/pkg/errs"
)

var ErrEmptyName = errs.Define(errs.ErrValidation, "user name cannot be empty")

// Actor is the signed-in person. Bookings and cancel requests refer to people by
// display name only, so Name is the identity used for every ownership decision.
type Actor struct {
	name     string
	fullName string
	email    string
}

func NewActor(name, fullName, email string) (Actor, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Actor{}, ErrEmptyName
	}
	return Actor{
		name:     n,
		fullName: strings.TrimSpace(fullName),
		email:    strings.TrimSpace(email),
	}, nil
}

func (a Actor) Name() string     { return a.name }
func (a Actor) FullName() string { return a.fullName }
func (a Actor) Email() string    { return a.email }

func (a Actor) IsZero() bool { return a.name == "" }

// Is reports whether the actor is the person recorded under name.
func (a Actor) Is(name string) bool {
	return SameName(a.name, name)
}

// SameName compares display names case-insensitively, ignoring surrounding
// whitespace. Blank names never match anything.
func SameName(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
