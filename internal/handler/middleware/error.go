package middleware

import (
	"log/slog"
	"net/http"

	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(cookieCfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}

			resp := httperr.FromError(err.Err)
			if resp.Error.Code == httperr.CodeSessionExpired {
				cookie.ClearSessionCookie(c, cookieCfg)
			}
			if resp.Status >= http.StatusInternalServerError && resp.Status != http.StatusBadGateway {
				slog.Error("unhandled error", "error", err.Err, "path", c.Request.URL.Path)
			}
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil)
				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
