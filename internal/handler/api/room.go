package api

import (
	"net/http"
	"strings"

	reqdto "room-booking-bff/internal/handler/dto/request"
	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary List rooms
// @Description Rooms with their current status (ongoing, upcoming or available) for today
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param search query string false "Room name filter"
// @Success 200 {object} resdto.RoomListResponse
// @Failure 502 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var query reqdto.RoomListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	list, err := h.q.List(c.Request.Context(), strings.TrimSpace(query.Search))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomList(list))
}
