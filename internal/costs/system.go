package costs

// System holds the per-run scalar quantities needed to evaluate total costs
// at any storage capacity.
type System struct {
	Rates

	EnergyGeneration       float64
	EnergyDemand           float64
	EfficiencyDirectUsage  float64
	SelfConsumptionInitial float64
	RatioInvestRES         float64

	PriceAdditional float64
	PriceInvestEES  float64
}

func (s System) ReferenceCosts() float64 {
	return ReferenceCosts(s.EnergyDemand, s.PriceImport, s.EfficiencyImport)
}

func (s System) InitialCosts() float64 {
	return InitialCosts(s.EnergyGeneration, s.Rates, s.EfficiencyDirectUsage, s.SelfConsumptionInitial, s.RatioInvestRES)
}

func (s System) AdditionalCosts(capacity, energyAdditional float64) float64 {
	return AdditionalCosts(capacity, energyAdditional, s.PriceAdditional, s.PriceInvestEES)
}

// TotalCostsWithResAndEES is reference costs minus initial savings minus the
// storage contribution at one capacity.
func TotalCostsWithResAndEES(s System, capacity, energyAdditional float64) float64 {
	costsRef := s.ReferenceCosts()
	costs0 := s.InitialCosts()
	costsAdditional := s.AdditionalCosts(capacity, energyAdditional)
	return costsRef - costs0 - costsAdditional
}
