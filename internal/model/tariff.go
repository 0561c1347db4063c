package model

import (
	"errors"
	"math"
)

// Tariff defines the flat grid tariff and the investment assumptions of one run.
// Units:
// - PriceImport, PriceExport: currency/Wh
// - Efficiencies: 0..1
// - CostsInvestTotalRES: currency (whole generation plant)
// - PriceInvestTotalEES: currency/Wh of storage capacity
// - TimeInvestRES, TimeInvestEES: hours (asset lifetime)
type Tariff struct {
	PriceImport      float64
	PriceExport      float64
	EfficiencyImport float64
	EfficiencyExport float64

	CostsInvestTotalRES float64
	TimeInvestRES       float64
	PriceInvestTotalEES float64
	TimeInvestEES       float64
}

const (
	DefaultEfficiencyImport = 1.0
	DefaultEfficiencyExport = 1.0
)

// DefaultTariff returns a tariff with only the documented defaults set:
// lossless import and export.
func DefaultTariff() Tariff {
	return Tariff{
		EfficiencyImport: DefaultEfficiencyImport,
		EfficiencyExport: DefaultEfficiencyExport,
	}
}

// Validate checks physical ranges. The cost formulas themselves never do this;
// drivers call it before handing parameters to the optimizer.
func (t Tariff) Validate() error {
	if !finite(t.PriceImport, t.PriceExport, t.CostsInvestTotalRES, t.PriceInvestTotalEES, t.TimeInvestRES, t.TimeInvestEES) {
		return errors.New("tariff values must be finite")
	}
	if t.PriceImport < 0 || t.PriceExport < 0 {
		return errors.New("PriceImport/PriceExport must be >= 0")
	}
	if t.EfficiencyImport <= 0 || t.EfficiencyImport > 1 {
		return errors.New("EfficiencyImport must be in (0, 1]")
	}
	if t.EfficiencyExport <= 0 || t.EfficiencyExport > 1 {
		return errors.New("EfficiencyExport must be in (0, 1]")
	}
	if t.CostsInvestTotalRES < 0 || t.PriceInvestTotalEES < 0 {
		return errors.New("investment costs must be >= 0")
	}
	if t.TimeInvestRES <= 0 || t.TimeInvestEES <= 0 {
		return errors.New("TimeInvestRES/TimeInvestEES must be > 0")
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
