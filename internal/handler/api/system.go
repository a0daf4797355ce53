package api

import (
	"context"
	"net/http"
	"time"

	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type SystemHandler struct {
	clock shared.ReferenceClock
	store shared.KVStore
}

func NewSystemHandler(clock shared.ReferenceClock, store shared.KVStore) *SystemHandler {
	return &SystemHandler{clock: clock, store: store}
}

// @Summary Health check
// @Description Check if the service and its local store are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Local store unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// @Summary Reference time
// @Description The "now" bookings are classified against, from the backend clock when reachable
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReferenceTimeResponse
// @Router /server-time [get]
func (h *SystemHandler) ServerTime(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromReferenceTime(h.clock.Now(c.Request.Context())))
}
