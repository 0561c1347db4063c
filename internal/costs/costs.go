// Package costs holds the closed-form economic relations used to price a
// renewable generation + storage system.
//
// Units (as used throughout the repo):
// - energies: Wh
// - prices: currency/Wh
// - times: hours
// - efficiencies and ratios: dimensionless
//
// None of the functions validate physical ranges. Division by a zero price or
// efficiency yields ±Inf/NaN, which is propagated to the caller.
package costs

import "math"

// Rates bundles the grid-boundary tariff quantities that most relations need.
type Rates struct {
	PriceImport         float64
	RatioExportToImport float64
	EfficiencyImport    float64
	EfficiencyExport    float64
}

// NewRates derives the export-to-import ratio from both flat prices.
func NewRates(priceImport, priceExport, efficiencyImport, efficiencyExport float64) Rates {
	return Rates{
		PriceImport:         priceImport,
		RatioExportToImport: ImportExportRatio(priceExport, priceImport),
		EfficiencyImport:    efficiencyImport,
		EfficiencyExport:    efficiencyExport,
	}
}

// ReferenceCosts is the cost of serving all demand from the grid,
// without any generation or storage.
func ReferenceCosts(energyDemand, priceImport, efficiencyImport float64) float64 {
	return (priceImport / efficiencyImport) * energyDemand
}

func PriceRatio(price, priceReference float64) float64 {
	return price / priceReference
}

// ImportExportRatio returns price_export / price_import.
// A zero import price yields +Inf (or NaN when the export price is zero too).
func ImportExportRatio(priceExport, priceImport float64) float64 {
	return PriceRatio(priceExport, priceImport)
}

// ImportExportRatioForEfficiency is the break-even import/export weighting r_p(mu)
// for energy routed through a device of the given efficiency.
func ImportExportRatioForEfficiency(efficiency, ratioExportToImport, efficiencyImport, efficiencyExport float64) float64 {
	return 1/efficiencyImport - (ratioExportToImport*efficiencyExport)/efficiency
}

func ImportExportPriceForEfficiency(efficiency float64, r Rates) float64 {
	return r.PriceImport * ImportExportRatioForEfficiency(efficiency, r.RatioExportToImport, r.EfficiencyImport, r.EfficiencyExport)
}

// InitialCosts are the savings from generation and direct self-consumption alone:
// export revenue, direct-usage savings weighted by the initial self-consumption,
// minus the amortized generation investment, all scaled by generated energy.
func InitialCosts(energyGeneration float64, r Rates, efficiencyDirectUsage, selfConsumptionInitial, ratioInvestRES float64) float64 {
	direct := efficiencyDirectUsage * selfConsumptionInitial *
		ImportExportRatioForEfficiency(efficiencyDirectUsage, r.RatioExportToImport, r.EfficiencyImport, r.EfficiencyExport)
	return r.PriceImport * (r.RatioExportToImport*r.EfficiencyExport + direct - ratioInvestRES) * energyGeneration
}

// PriceForAdditionalEnergy is the marginal price of energy that storage newly
// makes available, evaluated at the charge+discharge round trip efficiency.
func PriceForAdditionalEnergy(r Rates, efficiencyCharging, efficiencyDischarging float64) float64 {
	return ImportExportPriceForEfficiency(efficiencyCharging*efficiencyDischarging, r)
}

// AdditionalCosts is the net contribution of storage at one capacity:
// value of the additional energy minus amortized storage capital.
func AdditionalCosts(capacity, energyAdditional, priceAdditional, priceInvestEES float64) float64 {
	return priceAdditional*energyAdditional - priceInvestEES*capacity
}

func ImportCosts(energyDemand, energyCoveredDemand, energyAdditional, priceImport, efficiencyImport float64) float64 {
	return priceImport / efficiencyImport * (energyDemand - energyCoveredDemand - energyAdditional)
}

func ExportCosts(energyGeneration, energyUsedGeneration, energyAdditional, priceExport, efficiencyExport, efficiencyCharging, efficiencyDischarging float64) float64 {
	return priceExport * efficiencyExport * (energyGeneration - energyUsedGeneration - energyAdditional/(efficiencyCharging*efficiencyDischarging))
}

func TotalInvestCosts(costsInvestRES, costsInvestEES float64) float64 {
	return costsInvestRES + costsInvestEES
}

// TotalCosts composes the cash-flow view: import costs minus export revenue plus investment.
func TotalCosts(costsImport, costsExport, costsInvest float64) float64 {
	return costsImport - costsExport + costsInvest
}

// OptimalEffectiveness is the local effectiveness at which the marginal storage
// investment equals the marginal value of additional energy.
// A negative additional price has no finite break-even and yields +Inf.
func OptimalEffectiveness(priceInvestEES, priceAdditional, efficiencyDischarging float64) float64 {
	if priceAdditional < 0 {
		return math.Inf(1)
	}
	return priceInvestEES / (priceAdditional * efficiencyDischarging)
}

// ExportToImportRatioThreshold is the export/import price ratio above which
// storage stops paying off, given the initial local effectiveness.
func ExportToImportRatioThreshold(priceImport, priceInvestEES, effectivenessLocalInitial, efficiencyExport, efficiencyImport, efficiencyCharging, efficiencyDischarging float64) float64 {
	a := efficiencyCharging / efficiencyExport
	b := efficiencyDischarging / efficiencyImport
	return a * (b - priceInvestEES/(priceImport*effectivenessLocalInitial))
}

func RatioExportIntercept(efficiencyCharging, efficiencyDischarging, efficiencyExport, efficiencyImport float64) float64 {
	return efficiencyCharging * efficiencyDischarging / (efficiencyExport * efficiencyImport)
}

func RatioInvestEESIntercept(efficiencyDischarging, efficiencyImport float64) float64 {
	return efficiencyDischarging / efficiencyImport
}

func OptimalityRatio(effectivenessLocal, effectivenessLocalInitial, efficiencyDischarging, efficiencyImport float64) float64 {
	normalized := effectivenessLocal / effectivenessLocalInitial
	return RatioInvestEESIntercept(efficiencyDischarging, efficiencyImport) * normalized
}

// LevelizedCostsOfStorage is the storage cost contribution per unit of additional energy.
// Zero additional energy yields ±Inf or NaN.
func LevelizedCostsOfStorage(energyAdditional, costsAdditional float64) float64 {
	return costsAdditional / energyAdditional
}
