package models

// OptimizeResponse represents the response from an optimizer run
type OptimizeResponse struct {
	ID      string          `json:"id,omitempty"`
	Status  string          `json:"status"`
	Curve   string          `json:"curve,omitempty"`
	Summary OptimizeSummary `json:"summary"`
	Costs   []CostRow       `json:"costs,omitempty"`
}

// OptimizeSummary contains the derived quantities of a run
type OptimizeSummary struct {
	CostsRef             Float `json:"costs_ref"`
	Costs0               Float `json:"costs_0"`
	RatioExportToImport  Float `json:"ratio_export_to_import"`
	PriceInvestRES       Float `json:"price_invest_res"`
	RatioInvestRES       Float `json:"ratio_invest_res"`
	PriceInvestEES       Float `json:"price_invest_ees"`
	RatioInvestEES       Float `json:"ratio_invest_ees"`
	PriceAdditional      Float `json:"price_additional"`
	RatioAdditional      Float `json:"ratio_additional"`
	EffectivenessOptimal Float `json:"effectiveness_optimal"`
	IxCostsMinimal       int   `json:"ix_costs_minimal"`
	CostsMinimal         Float `json:"costs_minimal"`
	CapacityOptimal      Float `json:"capacity_optimal"`
	ThresholdReached     bool  `json:"threshold_reached"`
}

// CostRow represents one candidate capacity in the cost table
type CostRow struct {
	Index              int   `json:"index"`
	Capacity           Float `json:"capacity"`
	EffectivenessLocal Float `json:"effectiveness_local"`
	EnergyAdditional   Float `json:"energy_additional"`
	CostsAdditional    Float `json:"costs_additional"`
	CostsTotal         Float `json:"costs_total"`
	CostsLevelized     Float `json:"costs_levelized"`
	Optimal            bool  `json:"optimal"`
}

// CostsResponse is returned by GET /api/v1/optimize/:id/costs
type CostsResponse struct {
	ID    string    `json:"id"`
	Costs []CostRow `json:"costs"`
}

// ThresholdResponse represents the break-even effectiveness for a tariff
type ThresholdResponse struct {
	PriceInvestEES       Float `json:"price_invest_ees"`
	PriceAdditional      Float `json:"price_additional"`
	RatioAdditional      Float `json:"ratio_additional"`
	EffectivenessOptimal Float `json:"effectiveness_optimal"`
}

// CompareResponse represents the response from comparing tariff variations
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult is one ranked variation
type ComparisonResult struct {
	Rank    int             `json:"rank"`
	Name    string          `json:"name"`
	Summary OptimizeSummary `json:"summary"`
}

// CurveInfo represents an analysis curve available on the server
type CurveInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
