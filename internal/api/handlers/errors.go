package handlers

import (
	"storage-sizing/internal/api/models"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidConfig  = "INVALID_CONFIG"
	CodeInvalidCurve   = "INVALID_CURVE"
	CodeEmptyCurve     = "EMPTY_CURVE"
	CodeNotFound       = "NOT_FOUND"
	CodeOptimizeError  = "OPTIMIZE_ERROR"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
