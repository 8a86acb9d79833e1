// Package response writes the JSON envelopes shared by every HTTP handler.
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/shared/apperr"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is the body of a successful request that carries no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusFor maps an error classification to an HTTP status code.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON failure and aborts the chain.
// Unclassified errors are logged and replaced by a generic message so that
// driver or infrastructure details never reach the client.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)
	if kind == apperr.Internal {
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote_addr", c.ClientIP(),
		)
		c.AbortWithStatusJSON(status, ErrorResponse{Message: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: err.Error()})
}

// BadRequest writes a 400 for a request body or parameter that failed binding.
func BadRequest(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request", Error: err.Error()})
}

// Message writes a message-only body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
