//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service() *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
}

func (h *JWTHelper) GenerateToken(t *testing.T, name string) string {
	t.Helper()
	token, err := h.service().GenerateToken(name, name+" Full", name+"@example.com", time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, name string) string {
	t.Helper()
	token, err := h.service().GenerateToken(name, "", "", -time.Minute)
	require.NoError(t, err)
	return token
}
