package api

import (
	"net/http"

	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary Pending cancel requests
// @Description Badge count and the pending requests waiting for the caller's decision
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.NotificationResponse
// @Failure 401 {object} httperr.Response
// @Router /notifications [get]
func (h *NotificationHandler) Pending(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.Pending(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationView(view))
}
