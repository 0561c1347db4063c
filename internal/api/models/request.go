package models

import "storage-sizing/internal/model"

// TariffRequest carries a tariff in the same human units as the YAML config.
type TariffRequest struct {
	Name                 string   `json:"name,omitempty"`
	PriceImportCtPerKWh  float64  `json:"price_import_ct_per_kwh"`
	PriceExportCtPerKWh  float64  `json:"price_export_ct_per_kwh"`
	EfficiencyImport     *float64 `json:"efficiency_import,omitempty"` // default: 1.0
	EfficiencyExport     *float64 `json:"efficiency_export,omitempty"` // default: 1.0
	CostsInvestRES       float64  `json:"costs_invest_res"`
	LifetimeRESYears     float64  `json:"lifetime_res_years"`
	PriceInvestEESPerKWh float64  `json:"price_invest_ees_per_kwh"`
	LifetimeEESYears     float64  `json:"lifetime_ees_years"`
}

// OptimizeRequest represents the request body for an optimizer run.
// Exactly one of Curve or CurveFile should be set; Curve wins if both are.
type OptimizeRequest struct {
	Tariff       TariffRequest     `json:"tariff"`
	Curve        *model.CurveTable `json:"curve,omitempty"`
	CurveFile    string            `json:"curve_file,omitempty"` // curve id, see GET /api/v1/curves
	IncludeCosts bool              `json:"include_costs,omitempty"`
}

// ThresholdRequest asks for the break-even effectiveness without a curve.
type ThresholdRequest struct {
	Tariff                TariffRequest `json:"tariff"`
	TimeTotalHours        float64       `json:"time_total_hours" binding:"required,gt=0"`
	EfficiencyCharging    float64       `json:"efficiency_charging" binding:"required,gt=0,lte=1"`
	EfficiencyDischarging float64       `json:"efficiency_discharging" binding:"required,gt=0,lte=1"`
}

// CompareRequest runs the base tariff with each variation overlaid and ranks the results.
type CompareRequest struct {
	Base       OptimizeRequest   `json:"base"`
	Variations []TariffVariation `json:"variations" binding:"required,min=1,dive"`
}

// TariffVariation overrides the non-zero fields of the base tariff.
type TariffVariation struct {
	Name   string        `json:"name" binding:"required"`
	Tariff TariffRequest `json:"tariff"`
}
