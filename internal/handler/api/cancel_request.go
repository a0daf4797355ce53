package api

import (
	"net/http"

	reqdto "room-booking-bff/internal/handler/dto/request"
	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CancelRequestHandler struct {
	cmds commands.CancelRequestCommands
	q    queries.CancelRequestQueries
}

func NewCancelRequestHandler(cmds commands.CancelRequestCommands, q queries.CancelRequestQueries) *CancelRequestHandler {
	return &CancelRequestHandler{cmds: cmds, q: q}
}

// @Summary Request cancellation
// @Description Ask the booking PIC to cancel a booking the caller does not own
// @Tags cancel-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CreateCancelRequestRequest true "Reason"
// @Success 201 {object} queries.CancelRequestView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancel-requests [post]
func (h *CancelRequestHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookingID, err := reqdto.ParseBookingID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	var req reqdto.CreateCancelRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), actor, bookingID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.NewCancelRequestView(actor, created))
}

// @Summary List cancel requests
// @Description Requests the caller received (owner), sent (requester) or both (all, default)
// @Tags cancel-requests
// @Produce json
// @Security BearerAuth
// @Param scope query string false "owner | requester | all"
// @Success 200 {object} resdto.CancelRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /cancel-requests [get]
func (h *CancelRequestHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.CancelRequestListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	scope, err := queries.ParseScope(query.Scope)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid scope", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), actor, scope)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelRequestViews(views))
}

// @Summary Respond to a cancel request
// @Description Approve or reject a pending request. Only the booking PIC may respond.
// @Tags cancel-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cancel request ID"
// @Param request body reqdto.RespondCancelRequestRequest true "Decision"
// @Success 200 {object} resdto.RespondResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cancel-requests/{id}/respond [post]
func (h *CancelRequestHandler) Respond(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	requestID, err := reqdto.ParsePositiveID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cancel request id", nil)
		return
	}
	var req reqdto.RespondCancelRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Respond(c.Request.Context(), actor, requestID, req.Status, req.ResponseMessage)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view := queries.NewCancelRequestView(actor, result.Request)
	c.JSON(http.StatusOK, resdto.FromRespondResult(view, result))
}
