package localstate

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

type keys struct {
	prefix string
}

func (k keys) history(owner string) string {
	return k.prefix + "history:" + strings.ToLower(strings.TrimSpace(owner))
}

func (k keys) activeBookings() string {
	return k.prefix + "bookings:active"
}

// revoked never stores the token itself.
func (k keys) revoked(token string) string {
	sum := sha256.Sum256([]byte(token))
	return k.prefix + "revoked:" + hex.EncodeToString(sum[:])
}
