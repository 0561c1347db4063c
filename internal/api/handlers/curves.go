package handlers

import (
	"log/slog"
	"net/http"

	"storage-sizing/internal/api/models"
	"storage-sizing/internal/data"

	"github.com/gin-gonic/gin"
)

// CurveHandler lists the analysis curves available on the server
type CurveHandler struct {
	curveDir string
	logger   *slog.Logger
}

// NewCurveHandler creates a new curve handler
func NewCurveHandler(curveDir string, logger *slog.Logger) *CurveHandler {
	logger.Info("curve directory", "dir", curveDir)
	return &CurveHandler{curveDir: curveDir, logger: logger}
}

// CurveDir returns the curve directory path
func (h *CurveHandler) CurveDir() string {
	return h.curveDir
}

// ListCurves handles GET /api/v1/curves
func (h *CurveHandler) ListCurves(c *gin.Context) {
	curves := []models.CurveInfo{}

	infos, err := data.ListCurves(h.curveDir)
	if err != nil {
		// a missing directory is not an error for the client, there are just no curves
		h.logger.Warn("failed to read curve directory", "dir", h.curveDir, "error", err)
		c.JSON(http.StatusOK, gin.H{"curves": curves})
		return
	}
	for _, info := range infos {
		curves = append(curves, models.CurveInfo{
			ID:     info.ID,
			Name:   info.Name,
			Points: info.Points,
		})
	}
	c.JSON(http.StatusOK, gin.H{"curves": curves})
}
