package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ledger-recon/pkg/logger"
	"ledger-recon/pkg/response"
)

// Recovery turns a panic in a handler into a 500 envelope
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.GetLogger().WithFields(logrus.Fields{
					"request_id": c.GetString(requestIDKey),
					"panic":      rec,
					"stack":      string(debug.Stack()),
				}).Error("Panic recovered")
				response.InternalError(c, "Internal server error", "An unexpected error occurred")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// ErrorHandler answers errors attached with c.Error when the handler wrote
// no response of its own
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last()
		logger.GetLogger().WithError(err.Err).WithField("request_id", c.GetString(requestIDKey)).Error("Request error")
		if c.Writer.Status() == http.StatusOK {
			response.FromError(c, err.Err)
		}
	}
}
