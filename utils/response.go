package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the payload itself as the response body
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends {"error": message}; message must be safe to show to callers
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}
