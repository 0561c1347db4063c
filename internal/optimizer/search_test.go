package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"storage-sizing/internal/model"
)

func syntheticCurve(effectiveness ...float64) *model.CurveTable {
	t := &model.CurveTable{}
	for i, eff := range effectiveness {
		t.Points = append(t.Points, model.CurvePoint{
			Capacity:           float64(i + 1),
			EffectivenessLocal: eff,
		})
	}
	return t
}

func TestThresholdIndex(t *testing.T) {
	c := syntheticCurve(10, 8, 6, 4, 2)

	tests := []struct {
		name      string
		threshold float64
		want      int
	}{
		{"first value at or below", 5, 3},
		{"exact match counts", 4, 3},
		{"above every value", 11, 0},
		{"equal to first value", 10, 0},
		{"below every value", 1, 4},
		{"infinite threshold", math.Inf(1), 0},
		{"negative infinite threshold", math.Inf(-1), 4},
		{"NaN threshold", math.NaN(), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThresholdIndex(c, tt.threshold))
		})
	}
}

func TestThresholdIndexFlatCurve(t *testing.T) {
	c := syntheticCurve(5, 5, 5, 3)
	assert.Equal(t, 0, ThresholdIndex(c, 5))
	assert.Equal(t, 3, ThresholdIndex(c, 4))
}

func TestThresholdIndexEmpty(t *testing.T) {
	assert.Equal(t, -1, ThresholdIndex(&model.CurveTable{}, 1))
}

func TestCapacityForEffectiveness(t *testing.T) {
	c := syntheticCurve(10, 8, 6, 4, 2)
	assert.Equal(t, 4.0, CapacityForEffectiveness(c, 5))
	assert.Equal(t, 5.0, CapacityForEffectiveness(c, 0))
}

func TestOptimalCapacity(t *testing.T) {
	c := syntheticCurve(10, 8, 6, 4, 2)
	// 1 / (0.2 * 1) = 5
	assert.Equal(t, 4.0, OptimalCapacity(c, 1, 0.2, 1))
	// negative additional price: infinite threshold, smallest capacity
	assert.Equal(t, 1.0, OptimalCapacity(c, 1, -0.2, 1))
}
