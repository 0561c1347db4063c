package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"storage-sizing/internal/api/models"
	"storage-sizing/internal/config"
	"storage-sizing/internal/data"
	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler handles optimizer runs and their cached results
type OptimizeHandler struct {
	curveDir string
	cache    *data.ResultCache
	engine   *optimizer.Engine
	logger   *slog.Logger
}

// NewOptimizeHandler creates a new optimize handler
func NewOptimizeHandler(curveDir string, cache *data.ResultCache, logger *slog.Logger) *OptimizeHandler {
	return &OptimizeHandler{
		curveDir: curveDir,
		cache:    cache,
		engine:   optimizer.New(),
		logger:   logger,
	}
}

// requestError carries the HTTP status and error code for a failed request step.
type requestError struct {
	status int
	code   string
	err    error
}

func (e *requestError) Error() string { return e.err.Error() }

func (e *requestError) write(c *gin.Context) {
	writeError(c, e.status, e.code, e.err.Error())
}

// Optimize handles POST /api/v1/optimize
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	tariff, rerr := buildTariff(toTariffConfig(req.Tariff))
	if rerr != nil {
		rerr.write(c)
		return
	}
	curve, rerr := h.resolveCurve(req)
	if rerr != nil {
		rerr.write(c)
		return
	}

	res, rerr := h.run(curve, tariff)
	if rerr != nil {
		rerr.write(c)
		return
	}

	id := h.cache.Put(res)
	h.logger.Info("optimize",
		"id", id,
		"curve", curve.Name,
		"capacity_optimal", res.CapacityOptimal,
		"threshold_reached", res.ThresholdReached,
	)

	response := models.OptimizeResponse{
		ID:      id,
		Status:  "ok",
		Curve:   curve.Name,
		Summary: buildSummary(res),
	}
	if req.IncludeCosts {
		response.Costs = buildCostRows(res)
	}
	c.JSON(http.StatusOK, response)
}

// GetCosts handles GET /api/v1/optimize/:id/costs
func (h *OptimizeHandler) GetCosts(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, CodeNotFound, fmt.Sprintf("no result with id %q (unknown or expired)", id))
		return
	}
	c.JSON(http.StatusOK, models.CostsResponse{
		ID:    id,
		Costs: buildCostRows(res),
	})
}

// Threshold handles POST /api/v1/threshold
func (h *OptimizeHandler) Threshold(c *gin.Context) {
	var req models.ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	tariff, rerr := buildTariff(toTariffConfig(req.Tariff))
	if rerr != nil {
		rerr.write(c)
		return
	}
	th, err := optimizer.ComputeThreshold(tariff, req.TimeTotalHours, req.EfficiencyCharging, req.EfficiencyDischarging)
	if err != nil {
		writeError(c, http.StatusBadRequest, CodeInvalidConfig, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ThresholdResponse{
		PriceInvestEES:       models.Float(th.PriceInvestEES),
		PriceAdditional:      models.Float(th.PriceAdditional),
		RatioAdditional:      models.Float(th.RatioAdditional),
		EffectivenessOptimal: models.Float(th.EffectivenessOptimal),
	})
}

func (h *OptimizeHandler) run(curve *model.CurveTable, tariff model.Tariff) (*optimizer.Result, *requestError) {
	if err := model.CheckMonotone(curve); err != nil {
		h.logger.Warn("curve is not monotone, threshold search may select a non-optimal capacity",
			"curve", curve.Name, "error", err)
	}
	res, err := h.engine.Run(curve, tariff)
	if errors.Is(err, optimizer.ErrEmptyCurve) {
		return nil, &requestError{http.StatusBadRequest, CodeEmptyCurve, err}
	}
	if err != nil {
		return nil, &requestError{http.StatusInternalServerError, CodeOptimizeError, err}
	}
	return res, nil
}

func (h *OptimizeHandler) resolveCurve(req models.OptimizeRequest) (*model.CurveTable, *requestError) {
	if req.Curve != nil {
		if req.Curve.Name == "" {
			req.Curve.Name = "inline"
		}
		return req.Curve, nil
	}
	if req.CurveFile == "" {
		return nil, &requestError{http.StatusBadRequest, CodeInvalidRequest, errors.New("either curve or curve_file is required")}
	}

	path, err := data.FindCurve(h.curveDir, req.CurveFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &requestError{http.StatusNotFound, CodeNotFound, err}
	}
	if err != nil {
		return nil, &requestError{http.StatusBadRequest, CodeInvalidRequest, err}
	}
	curve, err := data.LoadCurve(path)
	if err != nil {
		return nil, &requestError{http.StatusBadRequest, CodeInvalidCurve, err}
	}
	return curve, nil
}

func toTariffConfig(t models.TariffRequest) config.TariffConfig {
	return config.TariffConfig{
		Name:                 t.Name,
		PriceImportCtPerKWh:  t.PriceImportCtPerKWh,
		PriceExportCtPerKWh:  t.PriceExportCtPerKWh,
		EfficiencyImport:     t.EfficiencyImport,
		EfficiencyExport:     t.EfficiencyExport,
		CostsInvestRES:       t.CostsInvestRES,
		LifetimeRESYears:     t.LifetimeRESYears,
		PriceInvestEESPerKWh: t.PriceInvestEESPerKWh,
		LifetimeEESYears:     t.LifetimeEESYears,
	}
}

func buildTariff(tc config.TariffConfig) (model.Tariff, *requestError) {
	t := tc.ToModelTariff()
	if err := t.Validate(); err != nil {
		return t, &requestError{http.StatusBadRequest, CodeInvalidConfig, err}
	}
	return t, nil
}

func buildSummary(res *optimizer.Result) models.OptimizeSummary {
	return models.OptimizeSummary{
		CostsRef:             models.Float(res.CostsRef),
		Costs0:               models.Float(res.Costs0),
		RatioExportToImport:  models.Float(res.RatioExportToImport),
		PriceInvestRES:       models.Float(res.PriceInvestRES),
		RatioInvestRES:       models.Float(res.RatioInvestRES),
		PriceInvestEES:       models.Float(res.PriceInvestEES),
		RatioInvestEES:       models.Float(res.RatioInvestEES),
		PriceAdditional:      models.Float(res.PriceAdditional),
		RatioAdditional:      models.Float(res.RatioAdditional),
		EffectivenessOptimal: models.Float(res.EffectivenessOptimal),
		IxCostsMinimal:       res.IxCostsMinimal,
		CostsMinimal:         models.Float(res.CostsMinimal),
		CapacityOptimal:      models.Float(res.CapacityOptimal),
		ThresholdReached:     res.ThresholdReached,
	}
}

func buildCostRows(res *optimizer.Result) []models.CostRow {
	rows := res.Rows()
	out := make([]models.CostRow, len(rows))
	for i, r := range rows {
		out[i] = models.CostRow{
			Index:              r.Index,
			Capacity:           models.Float(r.Capacity),
			EffectivenessLocal: models.Float(r.EffectivenessLocal),
			EnergyAdditional:   models.Float(r.EnergyAdditional),
			CostsAdditional:    models.Float(r.CostsAdditional),
			CostsTotal:         models.Float(r.CostsTotal),
			CostsLevelized:     models.Float(r.CostsLevelized),
			Optimal:            r.Optimal,
		}
	}
	return out
}
