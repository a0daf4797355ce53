package shared

import (
	"context"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/pkg/errs"
)

var ErrKeyNotFound = errs.Define(errs.ErrNotFound, "key not found")

// Gateways to the booking backend. Implementations read the caller's session
// from the context (see WithSession) and report failures with the errs classes.
type BookingGateway interface {
	ListActive(ctx context.Context) ([]*booking.Booking, error)
	Get(ctx context.Context, id booking.ID) (*booking.Booking, error)
	Complete(ctx context.Context, id booking.ID) error
	Cancel(ctx context.Context, id booking.ID, reason string) error
}

type CancelRequestGateway interface {
	Create(ctx context.Context, req *cancelrequest.CancelRequest) (*cancelrequest.CancelRequest, error)
	ListByOwner(ctx context.Context, ownerName string) ([]*cancelrequest.CancelRequest, error)
	ListByRequester(ctx context.Context, requesterName string) ([]*cancelrequest.CancelRequest, error)
	Respond(ctx context.Context, requestID int64, decision cancelrequest.Status, message string) error
}

// RispatGateway looks minutes up by the booking's row number; form and AI
// bookings share that key space on the backend.
type RispatGateway interface {
	List(ctx context.Context, bookingID booking.ID) ([]RispatFile, error)
	Upload(ctx context.Context, upload RispatUpload) (*RispatFile, error)
	Delete(ctx context.Context, fileID int64) error
	Download(ctx context.Context, fileID int64) (*RispatDownload, error)
}

type RoomGateway interface {
	List(ctx context.Context, search string) ([]Room, error)
}

type ServerTimeSource interface {
	ServerTime(ctx context.Context) (ServerTime, error)
}

// ReferenceClock yields the "now" every phase classification is made against.
type ReferenceClock interface {
	Now(ctx context.Context) ReferenceTime
}

// KVStore is the only local persistence. Values are opaque bytes; lists are
// kept newest first.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Push(ctx context.Context, key string, value []byte, maxLen int) error
	Range(ctx context.Context, key string, limit int) ([][]byte, error)
	Ping(ctx context.Context) error
	Close() error
}

type HistoryLog interface {
	Append(ctx context.Context, owner string, entry HistoryEntry) error
	List(ctx context.Context, owner string) ([]HistoryEntry, error)
}

// BookingCache holds the last active-bookings listing. Failures are
// absorbed by implementations; a miss just means asking the backend.
type BookingCache interface {
	Load(ctx context.Context) ([]*booking.Booking, bool)
	Store(ctx context.Context, list []*booking.Booking)
	Remove(ctx context.Context, id booking.ID)
}

type SessionStore interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type SessionEvents interface {
	Publish(e SessionExpired)
	Subscribe(fn func(SessionExpired)) (unsubscribe func())
}

// NotificationFeed serves the pending-requests badge for the session in ctx.
type NotificationFeed interface {
	Latest(ctx context.Context) (*NotificationSnapshot, error)
	Refresh(ctx context.Context)
}
