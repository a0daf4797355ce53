package api

import (
	"net/http"

	reqdto "room-booking-bff/internal/handler/dto/request"
	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	q queries.HistoryQueries
}

func NewHistoryHandler(q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{q: q}
}

// @Summary Booking history
// @Description Bookings the caller completed or cancelled, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), actor, query.Cursor(), queries.ValidateLimit(query.Limit))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryPage(page))
}
