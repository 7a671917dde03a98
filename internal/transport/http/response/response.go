package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The envelope is uniform across every endpoint: a success flag plus either
// the payload fields or a single error message, never both.

// OK writes success:true with the given payload fields merged in.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes success:false with the user-visible error message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
