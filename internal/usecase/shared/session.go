package shared

import (
	"context"

	"room-booking-bff/internal/domain/user"
)

// Session is the authenticated caller: the raw token forwarded upstream and
// the actor it resolved to.
type Session struct {
	Token string
	Actor user.Actor
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok && s.Token != ""
}
