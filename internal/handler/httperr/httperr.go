package httperr

import (
	"net/http"

	"room-booking-bff/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const (
	CodeBadRequest        = "bad_request"
	CodeValidation        = "validation_failed"
	CodeUnauthenticated   = "unauthenticated"
	CodeSessionExpired    = "session_expired"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeAlreadyFinalized  = "already_finalized"
	CodeConflict          = "conflict"
	CodeRejected          = "rejected"
	CodeUpstream          = "upstream_unavailable"
	CodeMalformedUpstream = "upstream_malformed"
	CodeInternal          = "internal"
)

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, codeForStatus(status), msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort records err and stops the chain without writing. ErrorHandler turns
// the error class into the response.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	_ = c.Error(err)
	c.Abort()
}

// FromError maps an error class to the response the client sees. Details of
// upstream failures stay in the log.
func FromError(err error) Response {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return NewResponse(http.StatusUnprocessableEntity, CodeValidation, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		return NewResponse(http.StatusForbidden, CodeForbidden, err.Error(), nil)
	case errs.Is(err, errs.ErrSessionExpired):
		return NewResponse(http.StatusUnauthorized, CodeSessionExpired, "Your session has expired, please sign in again", nil)
	case errs.Is(err, errs.ErrAlreadyFinalized):
		return NewResponse(http.StatusConflict, CodeAlreadyFinalized, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		return NewResponse(http.StatusNotFound, CodeNotFound, "Not found", nil)
	case errs.Is(err, errs.ErrConflict):
		return NewResponse(http.StatusConflict, CodeConflict, "The item was changed by someone else, reload and try again", nil)
	case errs.Is(err, errs.ErrRejected):
		return NewResponse(http.StatusUnprocessableEntity, CodeRejected, "The booking service rejected the request", nil)
	case errs.Is(err, errs.ErrMalformedResponse):
		return NewResponse(http.StatusBadGateway, CodeMalformedUpstream, "The booking service sent an unreadable answer, try again", nil)
	case errs.Is(err, errs.ErrUpstream):
		return NewResponse(http.StatusBadGateway, CodeUpstream, "The booking service is unavailable, try again", nil)
	default:
		return NewResponse(http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		return CodeValidation
	case http.StatusBadGateway:
		return CodeUpstream
	default:
		return CodeInternal
	}
}
