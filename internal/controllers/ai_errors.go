package controllers

import (
	"errors"
	"net/http"

	"glucomate/internal/gemini"

	"github.com/gin-gonic/gin"
)

// respondAIError maps a completion-layer failure to the response
// envelope. Both failure kinds are server errors; the underlying
// message is passed through for diagnostics.
func respondAIError(c *gin.Context, err error) {
	var malformed *gemini.MalformedResponseError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Invalid response from AI service",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "AI service request failed",
		"error":   err.Error(),
	})
}
