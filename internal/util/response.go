package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format is inherited from the previous deployment: success bodies
// are plain objects, failures are {"error": "<localized message>"} with no
// structured codes.

// OK writes a 200 response with the given body.
func OK(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, body)
}

// Fail writes an error response in the legacy {"error": msg} shape.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
