package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger-recon/internal/domain"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, statusCode int, code, message, details string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *gin.Context, message, details string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func InternalError(c *gin.Context, message, details string) {
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, details)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message, "")
}

func ValidationError(c *gin.Context, details string) {
	Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, "INVALID_STATE", message, "")
}

// FromError writes the response matching err's kind
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		ValidationError(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		Conflict(c, err.Error())
	default:
		InternalError(c, "Internal server error", err.Error())
	}
}
