package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/cookie"
	"room-booking-bff/internal/pkg/jwt"
	"room-booking-bff/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	sessions       shared.SessionStore
	cookieCfg      config.CookieConfig
	logger         *slog.Logger
}

const (
	ctxActorKey    = "actor"
	ctxUserNameKey = "user_name"
)

func NewAuthMiddleware(tokenValidator TokenValidator, sessions shared.SessionStore, cookieCfg config.CookieConfig, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		sessions:       sessions,
		cookieCfg:      cookieCfg,
		logger:         logger,
	}
}

// RequireAuth resolves the caller from the session cookie or a bearer token
// and puts the session on the request context for the upstream client.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing token"), "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			if errors.Is(err, jwt.ErrExpiredToken) {
				m.expired(c, err)
				return
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		ctx := c.Request.Context()
		revoked, err := m.sessions.IsRevoked(ctx, token)
		if err != nil {
			// the backend still rejects a dead token, so a store outage only costs a round trip
			m.logger.Warn("Session revocation check failed", "error", err.Error())
		}
		if revoked {
			m.expired(c, errors.New("session revoked"))
			return
		}

		actor, err := user.NewActor(claims.Name, claims.FullName, claims.Email)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Request = c.Request.WithContext(shared.WithSession(ctx, shared.Session{Token: token, Actor: actor}))
		c.Set(ctxActorKey, actor)
		c.Set(ctxUserNameKey, actor.Name())
		c.Next()
	}
}

func (m *AuthMiddleware) expired(c *gin.Context, err error) {
	cookie.ClearSessionCookie(c, m.cookieCfg)
	resp := httperr.NewResponse(http.StatusUnauthorized, httperr.CodeSessionExpired, "Your session has expired, please sign in again", nil)
	_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePublic, Meta: resp})
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok && !actor.IsZero()
}

// SetActor is for tests and tooling that authenticate without a token.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxUserNameKey, actor.Name())
}
