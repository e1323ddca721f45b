package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the "code" field of error bodies
const (
	// Request errors
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidFormat = "INVALID_FORMAT"

	// Task errors
	ErrCodeNotFound = "NOT_FOUND"

	// Server errors
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is the JSON body of every failed request
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates an APIError without details
func NewAPIError(code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// NewAPIErrorWithDetails creates an APIError carrying extra context, such as per-field rule violations
func NewAPIErrorWithDetails(code, message string, details interface{}) *APIError {
	return &APIError{Code: code, Message: message, Details: details}
}

// RespondWithError writes err and aborts the remaining handlers
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

func respond(c *gin.Context, statusCode int, code, message, fallback string) {
	if message == "" {
		message = fallback
	}
	RespondWithError(c, statusCode, NewAPIError(code, message))
}

// NotFound responds 404, used for unknown task IDs
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, ErrCodeNotFound, message, "Resource not found")
}

// BadRequest responds 400 for a well-formed request with invalid values
func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, ErrCodeInvalidInput, message, "Invalid request")
}

// BadRequestWithDetails responds 400 with a field -> rule map
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(ErrCodeInvalidInput, message, details))
}

// InvalidFormat responds 400 for a request that could not be decoded
func InvalidFormat(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, ErrCodeInvalidFormat, message, "Malformed request")
}

// InternalError responds 500
func InternalError(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, ErrCodeInternalError, message, "Internal server error")
}

// ServiceUnavailable responds 503, used when a session workspace cannot be created
func ServiceUnavailable(c *gin.Context, message string) {
	respond(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, "Service temporarily unavailable")
}
