package model

// ExampleHouseCurve is a small synthetic curve for a single-family house with
// rooftop PV over one year: storage sizes from 0 to 10 kWh in 1 kWh steps.
//
// Additional energy grows by effectiveness * discharging efficiency * step,
// i.e. each entry's effectiveness prices the step to the next capacity.
func ExampleHouseCurve() *CurveTable {
	const (
		step                  = 1000.0 // Wh
		efficiencyDischarging = 0.95
	)
	effectiveness := []float64{420, 380, 330, 290, 250, 210, 170, 130, 90, 50, 20}

	t := &CurveTable{
		Name: "example-house",
		Totals: Horizon{
			TimeTotal:              HoursPerYear,
			EnergyGeneration:       5.2e6,
			EnergyDemand:           4.1e6,
			EnergyUsedGeneration:   1.7e6,
			EnergyCoveredDemand:    1.615e6,
			SelfConsumptionInitial: 1.7e6 / 5.2e6,
			EfficiencyDirectUsage:  0.95,
			EfficiencyCharging:     0.95,
			EfficiencyDischarging:  efficiencyDischarging,
		},
	}
	energy := 0.0
	for i, eff := range effectiveness {
		t.Points = append(t.Points, CurvePoint{
			Capacity:           float64(i) * step,
			EffectivenessLocal: eff,
			EnergyAdditional:   energy,
		})
		energy += eff * efficiencyDischarging * step
	}
	return t
}

// ExampleTariff is a German household tariff: 31.46 ct/kWh import,
// 8.11 ct/kWh feed-in, a 15 000 PV plant over 20 years and storage at
// 800 per kWh over 15 years.
func ExampleTariff() Tariff {
	return Tariff{
		PriceImport:         CtPerKWhToPerWh(31.46),
		PriceExport:         CtPerKWhToPerWh(8.11),
		EfficiencyImport:    1.0,
		EfficiencyExport:    0.95,
		CostsInvestTotalRES: 15000,
		TimeInvestRES:       YearsToHours(20),
		PriceInvestTotalEES: PerKWhToPerWh(800),
		TimeInvestEES:       YearsToHours(15),
	}
}
