package optimizer

import (
	"fmt"

	"storage-sizing/internal/costs"
	"storage-sizing/internal/model"
)

// Threshold is the curve-independent part of a run: the effectiveness a
// storage step has to reach to pay for itself.
type Threshold struct {
	PriceInvestEES       float64
	PriceAdditional      float64
	RatioAdditional      float64
	EffectivenessOptimal float64
}

// ComputeThreshold evaluates the break-even effectiveness for a horizon of
// timeTotal hours without needing a curve.
func ComputeThreshold(t model.Tariff, timeTotal, efficiencyCharging, efficiencyDischarging float64) (Threshold, error) {
	var th Threshold
	var err error
	th.PriceInvestEES, err = costs.RelativeInvestPrice(t.TimeInvestEES, timeTotal, costs.PerEnergyInvest(t.PriceInvestTotalEES))
	if err != nil {
		return th, fmt.Errorf("threshold: price_invest_ees: %w", err)
	}
	rates := costs.NewRates(t.PriceImport, t.PriceExport, t.EfficiencyImport, t.EfficiencyExport)
	th.PriceAdditional = costs.PriceForAdditionalEnergy(rates, efficiencyCharging, efficiencyDischarging)
	th.RatioAdditional = costs.PriceRatio(th.PriceAdditional, t.PriceImport)
	th.EffectivenessOptimal = costs.OptimalEffectiveness(th.PriceInvestEES, th.PriceAdditional, efficiencyDischarging)
	return th, nil
}
