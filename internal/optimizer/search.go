package optimizer

import (
	"sort"

	"storage-sizing/internal/costs"
	"storage-sizing/internal/model"
)

// ThresholdIndex returns the first index whose local effectiveness is at or
// below threshold. It binary-searches and so relies on effectiveness being
// non-increasing along the curve; unordered curves give an arbitrary crossing.
// When the threshold is never reached the last index is returned.
// An empty curve yields -1.
func ThresholdIndex(c model.Curve, threshold float64) int {
	n := c.Len()
	if n == 0 {
		return -1
	}
	ix := sort.Search(n, func(i int) bool {
		return c.EffectivenessLocal(i) <= threshold
	})
	if ix == n {
		return n - 1
	}
	return ix
}

// CapacityForEffectiveness is the capacity at the threshold crossing for target.
// It panics on an empty curve, like indexing an empty slice.
func CapacityForEffectiveness(c model.Curve, target float64) float64 {
	return c.Capacity(ThresholdIndex(c, target))
}

// OptimalCapacity is the capacity at which the curve crosses the optimal effectiveness.
func OptimalCapacity(c model.Curve, priceInvestEES, priceAdditional, efficiencyDischarging float64) float64 {
	return CapacityForEffectiveness(c, costs.OptimalEffectiveness(priceInvestEES, priceAdditional, efficiencyDischarging))
}
