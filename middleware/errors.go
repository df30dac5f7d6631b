package middleware

import (
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/PabloBalle-SW-Rest-API/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached by handlers. An APIError becomes a
// {message, status_code} body with its carried status; anything else is
// logged and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var apiErr *utils.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, apiErr)
			return
		}

		utils.LogError(err, c.Request.Method+" "+c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
