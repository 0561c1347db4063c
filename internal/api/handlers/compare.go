package handlers

import (
	"fmt"
	"net/http"

	"storage-sizing/internal/analysis"
	"storage-sizing/internal/api/models"
	"storage-sizing/internal/config"
	"storage-sizing/internal/model"

	"github.com/gin-gonic/gin"
)

// Compare handles POST /api/v1/compare
func (h *OptimizeHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	curve, rerr := h.resolveCurve(req.Base)
	if rerr != nil {
		rerr.write(c)
		return
	}
	if curve.Len() == 0 {
		writeError(c, http.StatusBadRequest, CodeEmptyCurve, "curve has no points")
		return
	}

	base := toTariffConfig(req.Base.Tariff)
	scenarios := make([]analysis.Scenario, 0, len(req.Variations))
	for _, v := range req.Variations {
		// Merge base tariff with variation
		tariff, rerr := buildTariff(config.MergeTariff(base, toTariffConfig(v.Tariff)))
		if rerr != nil {
			writeError(c, rerr.status, rerr.code, fmt.Sprintf("variation %q: %v", v.Name, rerr.err))
			return
		}
		scenarios = append(scenarios, analysis.Scenario{
			Name:   v.Name,
			Inputs: model.OptimizeInputs{Curve: curve, Tariff: tariff},
		})
	}

	results, err := analysis.RunScenarios(c.Request.Context(), scenarios)
	if err != nil {
		writeError(c, http.StatusInternalServerError, CodeOptimizeError, err.Error())
		return
	}

	ranked := analysis.Rank(results)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for _, r := range ranked {
		comparison = append(comparison, models.ComparisonResult{
			Rank:    r.Rank,
			Name:    r.Name,
			Summary: buildSummary(r.Result),
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: comparison,
	})
}
