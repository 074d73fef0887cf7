// Package httpapi provides the shared error response shape for API handlers.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents the error response structure returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error writes an error response with a machine-checkable code.
func Error(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// NotFound writes a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, "NOT_FOUND", message, http.StatusNotFound)
}

// Forbidden writes a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, "FORBIDDEN", message, http.StatusForbidden)
}

// InternalError writes a generic 500 error response. Details stay in the logs.
func InternalError(c *gin.Context) {
	Error(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
