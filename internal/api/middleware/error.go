package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"storage-sizing/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics in handlers and answers with INTERNAL_ERROR.
// String and error panic values are passed through as the message.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		}
		slog.Error("panic in handler",
			"path", c.Request.URL.Path,
			"panic", fmt.Sprint(recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
