package costs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	priceImport = 0.0003146 // 31.46 ct/kWh
	priceExport = 0.0000811 // 8.11 ct/kWh
)

func TestReferenceCosts(t *testing.T) {
	assert.InDelta(t, 3146.0, ReferenceCosts(10e6, priceImport, 1.0), 1e-9)
	assert.InDelta(t, 3146.0/0.9, ReferenceCosts(10e6, priceImport, 0.9), 1e-9)

	t.Run("increasing in demand", func(t *testing.T) {
		prev := ReferenceCosts(0, priceImport, 0.95)
		for _, demand := range []float64{1, 10, 1e3, 1e6, 5e6} {
			c := ReferenceCosts(demand, priceImport, 0.95)
			assert.Greater(t, c, prev)
			prev = c
		}
	})

	t.Run("non-increasing in import efficiency", func(t *testing.T) {
		prev := math.Inf(1)
		for _, eff := range []float64{0.5, 0.8, 0.9, 0.95, 1.0} {
			c := ReferenceCosts(4e6, priceImport, eff)
			assert.LessOrEqual(t, c, prev)
			prev = c
		}
	})
}

func TestImportExportRatio(t *testing.T) {
	assert.InDelta(t, 0.2577876, ImportExportRatio(priceExport, priceImport), 1e-6)
	assert.True(t, math.IsInf(ImportExportRatio(priceExport, 0), 1))
	assert.True(t, math.IsNaN(ImportExportRatio(0, 0)))
}

func TestImportExportRatioForEfficiency(t *testing.T) {
	ratio := ImportExportRatio(priceExport, priceImport)
	got := ImportExportRatioForEfficiency(0.95, ratio, 1.0, 0.95)
	assert.InDelta(t, 1-ratio, got, 1e-15)

	// lossless boundary collapses to 1 - ratio
	assert.InDelta(t, 1-0.25, ImportExportRatioForEfficiency(1, 0.25, 1, 1), 1e-15)
	// lower device efficiency lowers the break-even weighting
	assert.Less(t, ImportExportRatioForEfficiency(0.8, 0.25, 1, 1), ImportExportRatioForEfficiency(0.9, 0.25, 1, 1))
}

func TestRelativeInvestPrice(t *testing.T) {
	year := 365.0 * 24

	t.Run("total basis", func(t *testing.T) {
		p, err := RelativeInvestPrice(20*year, 3*year, TotalInvest(15000, 12e6))
		require.NoError(t, err)
		assert.InDelta(t, 15000/12e6*3.0/20.0, p, 1e-15)
	})

	t.Run("per energy basis", func(t *testing.T) {
		p, err := RelativeInvestPrice(15*year, 3*year, PerEnergyInvest(0.8))
		require.NoError(t, err)
		assert.InDelta(t, 0.16, p, 1e-15)
	})

	t.Run("scale invariant", func(t *testing.T) {
		for _, basis := range []InvestBasis{TotalInvest(15000, 12e6), PerEnergyInvest(0.8)} {
			a, err := RelativeInvestPrice(15*year, 3*year, basis)
			require.NoError(t, err)
			b, err := RelativeInvestPrice(30*year, 6*year, basis)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})

	t.Run("invalid basis", func(t *testing.T) {
		energy := 1e6
		cases := map[string]InvestBasis{
			"neither":      {},
			"both":         {Energy: &energy, CostsInvestTotal: &energy, PricePerEnergy: &energy},
			"energy only":  {Energy: &energy},
			"total only":   {CostsInvestTotal: &energy},
			"half + price": {Energy: &energy, PricePerEnergy: &energy},
		}
		for name, basis := range cases {
			_, err := RelativeInvestPrice(1, 1, basis)
			assert.ErrorIs(t, err, ErrInvalidArgument, name)
		}
	})
}

func TestInitialCosts(t *testing.T) {
	r := NewRates(priceImport, priceExport, 1.0, 0.95)
	got := InitialCosts(5e6, r, 0.95, 0.4, 0.1)
	want := priceImport * (r.RatioExportToImport*0.95 + 0.95*0.4*(1-r.RatioExportToImport) - 0.1) * 5e6
	assert.InDelta(t, want, got, 1e-9)

	// no generation, no savings
	assert.Equal(t, 0.0, InitialCosts(0, r, 0.95, 0.4, 0.1))
}

func TestPriceForAdditionalEnergy(t *testing.T) {
	r := NewRates(priceImport, priceExport, 1.0, 0.95)
	got := PriceForAdditionalEnergy(r, 0.95, 0.95)
	want := priceImport * (1 - r.RatioExportToImport*0.95/(0.95*0.95))
	assert.InDelta(t, want, got, 1e-18)
	assert.Greater(t, got, 0.0)

	// an export price above the round trip value makes additional energy worthless
	expensive := NewRates(priceImport, priceImport, 1.0, 1.0)
	assert.Less(t, PriceForAdditionalEnergy(expensive, 0.9, 0.9), 0.0)
}

func TestAdditionalCosts(t *testing.T) {
	assert.InDelta(t, 0.25*100-0.5*10, AdditionalCosts(10, 100, 0.25, 0.5), 1e-12)
	assert.Equal(t, 0.0, AdditionalCosts(0, 0, 0.25, 0.5))
}

func TestTotalCostsWithResAndEES(t *testing.T) {
	s := testSystem()
	for _, pt := range [][2]float64{{0, 0}, {1000, 300}, {5000, 900}} {
		got := TotalCostsWithResAndEES(s, pt[0], pt[1])
		want := s.ReferenceCosts() - s.InitialCosts() - s.AdditionalCosts(pt[0], pt[1])
		assert.Equal(t, want, got)
	}
}

func TestOptimalEffectiveness(t *testing.T) {
	t.Run("finite positive for positive price", func(t *testing.T) {
		for _, p := range []float64{1e-6, 1e-4, 0.2} {
			for _, eta := range []float64{0.5, 0.95, 1} {
				e := OptimalEffectiveness(0.16, p, eta)
				assert.False(t, math.IsInf(e, 0))
				assert.Greater(t, e, 0.0)
			}
		}
	})

	t.Run("infinite for negative price", func(t *testing.T) {
		for _, p := range []float64{-1e-9, -0.3} {
			assert.True(t, math.IsInf(OptimalEffectiveness(0.16, p, 0.95), 1))
		}
	})

	assert.InDelta(t, 0.16/(0.2*0.8), OptimalEffectiveness(0.16, 0.2, 0.8), 1e-15)
}

func TestCashFlowRelations(t *testing.T) {
	imp := ImportCosts(1000, 400, 100, 0.3, 1.0)
	assert.InDelta(t, 150.0, imp, 1e-12)

	exp := ExportCosts(1000, 500, 81, 0.1, 1.0, 0.9, 0.9)
	assert.InDelta(t, 40.0, exp, 1e-12)

	assert.InDelta(t, 30.0, TotalInvestCosts(10, 20), 1e-12)
	assert.InDelta(t, 140.0, TotalCosts(imp, exp, 30), 1e-12)
}

func TestIntercepts(t *testing.T) {
	assert.InDelta(t, 0.95*0.95/0.95, RatioExportIntercept(0.95, 0.95, 0.95, 1), 1e-15)
	assert.InDelta(t, 0.95, RatioInvestEESIntercept(0.95, 1), 1e-15)
	assert.InDelta(t, 0.95*0.5, OptimalityRatio(0.4, 0.8, 0.95, 1), 1e-15)

	th := ExportToImportRatioThreshold(priceImport, 0.16/3.0/365, 1.0, 0.95, 1.0, 0.95, 0.95)
	assert.Less(t, th, RatioExportIntercept(0.95, 0.95, 0.95, 1.0))
}

func TestLevelizedCostsOfStorage(t *testing.T) {
	assert.InDelta(t, 0.5, LevelizedCostsOfStorage(10, 5), 1e-15)
	assert.True(t, math.IsNaN(LevelizedCostsOfStorage(0, 0)))
	assert.True(t, math.IsInf(LevelizedCostsOfStorage(0, -1), -1))
}

func testSystem() System {
	r := NewRates(priceImport, priceExport, 1.0, 0.95)
	return System{
		Rates:                  r,
		EnergyGeneration:       12e6,
		EnergyDemand:           10e6,
		EfficiencyDirectUsage:  0.95,
		SelfConsumptionInitial: 0.35,
		RatioInvestRES:         0.12,
		PriceAdditional:        PriceForAdditionalEnergy(r, 0.95, 0.95),
		PriceInvestEES:         0.16,
	}
}
