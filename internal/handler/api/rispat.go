package api

import (
	"errors"
	"mime"
	"net/http"

	reqdto "room-booking-bff/internal/handler/dto/request"
	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/internal/usecase/queries"
	"room-booking-bff/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type RispatHandler struct {
	cmds commands.RispatCommands
	q    queries.RispatQueries
}

func NewRispatHandler(cmds commands.RispatCommands, q queries.RispatQueries) *RispatHandler {
	return &RispatHandler{cmds: cmds, q: q}
}

// @Summary List meeting minutes
// @Tags rispat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.RispatFileResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id}/rispat [get]
func (h *RispatHandler) List(c *gin.Context) {
	id, err := reqdto.ParseBookingID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	files, err := h.q.List(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRispatFiles(files))
}

// @Summary Upload meeting minutes
// @Description Only the booking PIC may upload, and not for cancelled bookings
// @Tags rispat
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param file formData file true "Minutes document"
// @Success 201 {object} resdto.RispatFileResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /bookings/{id}/rispat [post]
func (h *RispatHandler) Upload(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := reqdto.ParseBookingID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "File is too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "A file is required", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable upload", nil)
		return
	}
	defer file.Close()

	uploaded, err := h.cmds.Upload(c.Request.Context(), actor, shared.RispatUpload{
		BookingID:   id,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRispatFile(uploaded))
}

// @Summary Delete meeting minutes
// @Tags rispat
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param fileId path int true "File ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/rispat/{fileId} [delete]
func (h *RispatHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, err := reqdto.ParseBookingID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	fileID, err := reqdto.ParsePositiveID(c.Param("fileId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid file id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id, fileID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Download meeting minutes
// @Tags rispat
// @Produce octet-stream
// @Security BearerAuth
// @Param fileId path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /rispat/{fileId} [get]
func (h *RispatHandler) Download(c *gin.Context) {
	fileID, err := reqdto.ParsePositiveID(c.Param("fileId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid file id", nil)
		return
	}
	dl, err := h.q.Download(c.Request.Context(), fileID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	defer dl.Body.Close()

	size := dl.Size
	if size <= 0 {
		size = -1
	}
	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, size, contentType, dl.Body, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": dl.FileName}),
	})
}
