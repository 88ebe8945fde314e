package respond

import (
	"github.com/gin-gonic/gin"

	"visioon-backend/internal/shared/telemetry"
)

// ErrorResponse is the flat error body every endpoint returns. The UI keys
// off the "error" field, so the shape never nests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs and sends a standardized error response, aborting the chain.
func Error(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
