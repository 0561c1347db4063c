package costs

import "gonum.org/v1/gonum/floats"

// Element-wise forms of the relations evaluated across an analysis curve.
// Slice arguments must have equal lengths; gonum panics otherwise.

func AdditionalCostsSeries(capacity, energyAdditional []float64, priceAdditional, priceInvestEES float64) []float64 {
	out := make([]float64, len(energyAdditional))
	floats.ScaleTo(out, priceAdditional, energyAdditional)
	floats.AddScaled(out, -priceInvestEES, capacity)
	return out
}

// TotalCostsWithResAndEESSeries evaluates total costs at every capacity,
// given the matching additional costs.
func TotalCostsWithResAndEESSeries(s System, costsAdditional []float64) []float64 {
	out := filled(len(costsAdditional), s.ReferenceCosts()-s.InitialCosts())
	floats.Sub(out, costsAdditional)
	return out
}

func LevelizedCostsOfStorageSeries(energyAdditional, costsAdditional []float64) []float64 {
	out := make([]float64, len(costsAdditional))
	floats.DivTo(out, costsAdditional, energyAdditional)
	return out
}

func OptimalityRatioSeries(effectivenessLocal []float64, effectivenessLocalInitial, efficiencyDischarging, efficiencyImport float64) []float64 {
	out := make([]float64, len(effectivenessLocal))
	floats.DivTo(out, effectivenessLocal, filled(len(effectivenessLocal), effectivenessLocalInitial))
	floats.Scale(RatioInvestEESIntercept(efficiencyDischarging, efficiencyImport), out)
	return out
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	floats.AddConst(v, out)
	return out
}
