package api

import (
	"errors"
	"net/http"

	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

var errNoActor = errors.New("no actor on context")

// requireActor is for handlers mounted behind RequireAuth.
func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
	}
	return actor, ok
}
