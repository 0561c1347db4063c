package optimizer

import "storage-sizing/internal/model"

// Result is the full cost breakdown of one run.
// Units follow package costs: currency, currency/Wh, Wh.
type Result struct {
	Inputs  model.Tariff
	Horizon model.Horizon

	CostsRef            float64
	RatioExportToImport float64
	PriceInvestRES      float64
	RatioInvestRES      float64
	PriceInvestEES      float64
	RatioInvestEES      float64
	Costs0              float64
	PriceAdditional     float64
	RatioAdditional     float64

	// Per candidate capacity, in curve order.
	Capacity           []float64
	EffectivenessLocal []float64
	EnergyAdditional   []float64
	CostsAdditional    []float64
	CostsTotal         []float64
	CostsLevelized     []float64

	EffectivenessOptimal float64
	IxCostsMinimal       int
	CostsMinimal         float64
	CapacityOptimal      float64

	// ThresholdReached is false when no capacity drops to EffectivenessOptimal
	// and the largest simulated capacity was selected instead.
	ThresholdReached bool
}

// CostRow is one candidate capacity of a Result.
// This is the primary artifact for "what does each size cost".
type CostRow struct {
	Index              int
	Capacity           float64
	EffectivenessLocal float64
	EnergyAdditional   float64
	CostsAdditional    float64
	CostsTotal         float64
	CostsLevelized     float64
	Optimal            bool
}

func (r *Result) Rows() []CostRow {
	rows := make([]CostRow, len(r.Capacity))
	for i := range r.Capacity {
		rows[i] = CostRow{
			Index:              i,
			Capacity:           r.Capacity[i],
			EffectivenessLocal: r.EffectivenessLocal[i],
			EnergyAdditional:   r.EnergyAdditional[i],
			CostsAdditional:    r.CostsAdditional[i],
			CostsTotal:         r.CostsTotal[i],
			CostsLevelized:     r.CostsLevelized[i],
			Optimal:            i == r.IxCostsMinimal,
		}
	}
	return rows
}

// Fields returns the result as a mapping of named quantities for reporting.
func (r *Result) Fields() map[string]any {
	return map[string]any{
		"input_parameters": map[string]any{
			"price_import":           r.Inputs.PriceImport,
			"price_export":           r.Inputs.PriceExport,
			"costs_invest_total_res": r.Inputs.CostsInvestTotalRES,
			"time_invest_res":        r.Inputs.TimeInvestRES,
			"price_invest_total_ees": r.Inputs.PriceInvestTotalEES,
			"time_invest_ees":        r.Inputs.TimeInvestEES,
			"efficiency_import":      r.Inputs.EfficiencyImport,
			"efficiency_export":      r.Inputs.EfficiencyExport,
		},
		"costs_ref":              r.CostsRef,
		"ratio_export_to_import": r.RatioExportToImport,
		"price_invest_res":       r.PriceInvestRES,
		"ratio_invest_res":       r.RatioInvestRES,
		"price_invest_ees":       r.PriceInvestEES,
		"ratio_invest_ees":       r.RatioInvestEES,
		"costs_0":                r.Costs0,
		"price_additional":       r.PriceAdditional,
		"ratio_additional":       r.RatioAdditional,
		"costs_additional":       r.CostsAdditional,
		"costs_total":            r.CostsTotal,
		"costs_levelized":        r.CostsLevelized,
		"effectiveness_optimal":  r.EffectivenessOptimal,
		"ix_costs_minimal":       r.IxCostsMinimal,
		"costs_minimal":          r.CostsMinimal,
		"capacity_optimal":       r.CapacityOptimal,
		"threshold_reached":      r.ThresholdReached,
	}
}
