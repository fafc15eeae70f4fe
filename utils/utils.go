package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendJSONError sends a standardized JSON error response and logs the internal error.
// For 5xx errors the client gets a generic message; the actual internalError is
// only logged. For 4xx errors the publicMsg is shown to the client.
func SendJSONError(c *gin.Context, statusCode int, publicMsg string, internalError error) {
	if internalError != nil {
		log.Printf("ERROR: Handler error: status_code=%d, public_message='%s', internal_error='%v', path='%s'",
			statusCode, publicMsg, internalError, c.Request.URL.Path)
	}

	if statusCode >= http.StatusInternalServerError {
		publicMsg = "An unexpected error occurred. Please try again later."
	}

	c.AbortWithStatusJSON(statusCode, gin.H{"success": false, "message": publicMsg})
}

// SendJSON sends a success envelope with optional extra fields merged in.
func SendJSON(c *gin.Context, statusCode int, message string, extra gin.H) {
	response := gin.H{"success": true}
	if message != "" {
		response["message"] = message
	}
	for k, v := range extra {
		response[k] = v
	}
	c.JSON(statusCode, response)
}
