package optimizer

import (
	"errors"
	"fmt"

	"storage-sizing/internal/costs"
	"storage-sizing/internal/model"
)

// ErrEmptyCurve is returned when there is no candidate capacity to search.
var ErrEmptyCurve = errors.New("empty curve")

// Engine finds the cost-minimal storage capacity on an analysis curve.
// It holds no state; concurrent Runs are safe.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Run computes the full cost breakdown for curve c under tariff t and selects
// the capacity where local effectiveness first drops to the optimal threshold.
func (e *Engine) Run(c model.Curve, t model.Tariff, opts ...Option) (*Result, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("optimize: %w", ErrEmptyCurve)
	}
	ro := runOptions{observer: noopObserver{}}
	for _, opt := range opts {
		opt(&ro)
	}
	obs := ro.observer

	h := c.Horizon()
	obs.Observe("time_total", h.TimeTotal)
	obs.Observe("energy_generation", h.EnergyGeneration)
	obs.Observe("energy_demand", h.EnergyDemand)
	obs.Observe("energy_used_generation", h.EnergyUsedGeneration)
	obs.Observe("energy_covered_demand", h.EnergyCoveredDemand)

	res := &Result{Inputs: t, Horizon: h}

	res.CostsRef = costs.ReferenceCosts(h.EnergyDemand, t.PriceImport, t.EfficiencyImport)
	obs.Observe("costs_ref", res.CostsRef)

	res.RatioExportToImport = costs.ImportExportRatio(t.PriceExport, t.PriceImport)
	obs.Observe("ratio_export_to_import", res.RatioExportToImport)

	var err error
	res.PriceInvestRES, err = costs.RelativeInvestPrice(t.TimeInvestRES, h.TimeTotal,
		costs.TotalInvest(t.CostsInvestTotalRES, h.EnergyGeneration))
	if err != nil {
		return nil, fmt.Errorf("optimize: price_invest_res: %w", err)
	}
	obs.Observe("price_invest_res", res.PriceInvestRES)

	res.RatioInvestRES = costs.PriceRatio(res.PriceInvestRES, t.PriceImport)
	obs.Observe("ratio_invest_res", res.RatioInvestRES)

	res.PriceInvestEES, err = costs.RelativeInvestPrice(t.TimeInvestEES, h.TimeTotal,
		costs.PerEnergyInvest(t.PriceInvestTotalEES))
	if err != nil {
		return nil, fmt.Errorf("optimize: price_invest_ees: %w", err)
	}
	obs.Observe("price_invest_ees", res.PriceInvestEES)

	res.RatioInvestEES = costs.PriceRatio(res.PriceInvestEES, t.PriceImport)
	obs.Observe("ratio_invest_ees", res.RatioInvestEES)

	rates := costs.Rates{
		PriceImport:         t.PriceImport,
		RatioExportToImport: res.RatioExportToImport,
		EfficiencyImport:    t.EfficiencyImport,
		EfficiencyExport:    t.EfficiencyExport,
	}

	res.Costs0 = costs.InitialCosts(h.EnergyGeneration, rates, h.EfficiencyDirectUsage, h.SelfConsumptionInitial, res.RatioInvestRES)
	obs.Observe("costs_0", res.Costs0)

	res.PriceAdditional = costs.PriceForAdditionalEnergy(rates, h.EfficiencyCharging, h.EfficiencyDischarging)
	obs.Observe("price_additional", res.PriceAdditional)

	res.RatioAdditional = costs.PriceRatio(res.PriceAdditional, t.PriceImport)
	obs.Observe("ratio_additional", res.RatioAdditional)

	sys := costs.System{
		Rates:                  rates,
		EnergyGeneration:       h.EnergyGeneration,
		EnergyDemand:           h.EnergyDemand,
		EfficiencyDirectUsage:  h.EfficiencyDirectUsage,
		SelfConsumptionInitial: h.SelfConsumptionInitial,
		RatioInvestRES:         res.RatioInvestRES,
		PriceAdditional:        res.PriceAdditional,
		PriceInvestEES:         res.PriceInvestEES,
	}

	res.Capacity, res.EffectivenessLocal, res.EnergyAdditional = model.Columns(c)
	res.CostsAdditional = costs.AdditionalCostsSeries(res.Capacity, res.EnergyAdditional, res.PriceAdditional, res.PriceInvestEES)
	obs.Observe("costs_additional", res.CostsAdditional)

	res.CostsTotal = costs.TotalCostsWithResAndEESSeries(sys, res.CostsAdditional)
	obs.Observe("costs_total", res.CostsTotal)

	res.CostsLevelized = costs.LevelizedCostsOfStorageSeries(res.EnergyAdditional, res.CostsAdditional)

	res.EffectivenessOptimal = costs.OptimalEffectiveness(res.PriceInvestEES, res.PriceAdditional, h.EfficiencyDischarging)
	obs.Observe("effectiveness_optimal", res.EffectivenessOptimal)

	ix := ThresholdIndex(c, res.EffectivenessOptimal)
	res.IxCostsMinimal = ix
	res.CostsMinimal = res.CostsTotal[ix]
	res.CapacityOptimal = res.Capacity[ix]
	res.ThresholdReached = res.EffectivenessLocal[ix] <= res.EffectivenessOptimal
	obs.Observe("ix_costs_minimal", ix)
	obs.Observe("costs_minimal", res.CostsMinimal)
	obs.Observe("capacity_optimal", res.CapacityOptimal)

	return res, nil
}
