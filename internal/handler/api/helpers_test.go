//go:build unit

package api_test

import (
	"net/http"

	"room-booking-bff/internal/handler/middleware"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/usecase/shared"
	"room-booking-bff/tests/common/builder"

	"github.com/gin-gonic/gin"
)

// newRouter mirrors the production middleware order that matters for error
// rendering. The bearer value is used as the actor name.
func newRouter() (*gin.Engine, gin.HandlerFunc) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(config.CookieConfig{SameSite: "Lax"}))

	authMiddleware := func(c *gin.Context) {
		name := c.GetHeader("Authorization")
		if name == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		actor := builder.NewActor(name[len("Bearer "):])
		middleware.SetActor(c, actor)
		c.Request = c.Request.WithContext(shared.WithSession(c.Request.Context(), shared.Session{Token: "t", Actor: actor}))
		c.Next()
	}
	return router, authMiddleware
}
