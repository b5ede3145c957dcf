package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/response"
)

// pathID parses the :id path parameter, answering 400 when it is malformed
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// parseDate reads a YYYY-MM-DD value; an empty string yields the zero time
func parseDate(c *gin.Context, name, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" format", "Use YYYY-MM-DD format")
		return time.Time{}, false
	}
	return t, true
}

// requireDate is parseDate for mandatory values
func requireDate(c *gin.Context, name, value string) (time.Time, bool) {
	if value == "" {
		response.ValidationError(c, name+" is required")
		return time.Time{}, false
	}
	return parseDate(c, name, value)
}
