package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/domain"
)

func TestFromError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewLineError(2, "amount must be greater than zero"), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fmt.Errorf("load: %w", domain.NewNotFoundError("journal entry", 7)), http.StatusNotFound, "NOT_FOUND"},
		{&domain.StateError{Resource: "journal entry", ID: 1, From: "POSTED", To: "POSTED"}, http.StatusConflict, "INVALID_STATE"},
		{domain.NewPersistenceError("insert", errors.New("connection reset")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}
