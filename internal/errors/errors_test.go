package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		respond func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad status") }, http.StatusBadRequest, ErrCodeInvalidInput, "bad status"},
		{"invalid format", func(c *gin.Context) { InvalidFormat(c, "") }, http.StatusBadRequest, ErrCodeInvalidFormat, "Malformed request"},
		{"internal", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
		{"unavailable", func(c *gin.Context) { ServiceUnavailable(c, "down") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())

			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Nil(t, body.Details)
		})
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequestWithDetails(c, "Invalid request body", map[string]string{"Title": "required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeInvalidInput, body["code"])
	assert.Equal(t, map[string]interface{}{"Title": "required"}, body["details"])
}
