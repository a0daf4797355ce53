package errs

import "errors"

// Error classes shared by every layer. Concrete errors are declared next to the
// code that raises them and belong to exactly one class (see Define).
var (
	// Caught before any upstream call.
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("action not permitted")

	// Reported by the upstream backend.
	ErrNotFound          = errors.New("not found")
	ErrAlreadyFinalized  = errors.New("already finalized")
	ErrConflict          = errors.New("conflict")
	ErrRejected          = errors.New("rejected by backend")
	ErrUpstream          = errors.New("upstream unavailable")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrSessionExpired    = errors.New("session expired")

	// Local persistence.
	ErrStoreFailure = errors.New("local store failure")
)
