package infra

import (
	"context"
	"errors"
	"log/slog"

	"room-booking-bff/internal/pkg/errs"
)

type ErrorKind string

// Error is what every adapter under infra returns. Kind is matched by IsKind
// inside infra; outer layers only see the errs class it maps to.
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status from the upstream, 0 when there was none
	msg    string
	err    error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// Message is the human readable part without the kind prefix.
func (e Error) Message() string {
	return e.msg
}

func (e Error) Is(target error) bool {
	class, ok := kindClass[e.Kind]
	return ok && target == class
}

var kindClass = map[ErrorKind]error{
	KindUnauthorized: errs.ErrSessionExpired,
	KindNotFound:     errs.ErrNotFound,
	KindConflict:     errs.ErrConflict,
	KindRejected:     errs.ErrRejected,
	KindTransport:    errs.ErrUpstream,
	KindMalformed:    errs.ErrMalformedResponse,
	KindStoreFailure: errs.ErrStoreFailure,
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	level := slog.LevelError
	if kind == KindNotFound || kind == KindConflict || kind == KindRejected || kind == KindUnauthorized {
		level = slog.LevelWarn
	}
	slogger.Log(context.Background(), level, "Infrastructure error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindConflict     ErrorKind = "CONFLICT"
	KindRejected     ErrorKind = "REJECTED"
	KindTransport    ErrorKind = "TRANSPORT"
	KindMalformed    ErrorKind = "MALFORMED"
	KindStoreFailure ErrorKind = "STORE_FAILURE"
)
