package model

import (
	"errors"
	"fmt"
)

// Horizon holds the whole-horizon scalars the analysis engine attaches to a curve.
// Units: TimeTotal in hours, energies in Wh, the rest dimensionless.
type Horizon struct {
	TimeTotal              float64 `json:"time_total" yaml:"time_total"`
	EnergyGeneration       float64 `json:"energy_generation" yaml:"energy_generation"`
	EnergyDemand           float64 `json:"energy_demand" yaml:"energy_demand"`
	EnergyUsedGeneration   float64 `json:"energy_used_generation" yaml:"energy_used_generation"`
	EnergyCoveredDemand    float64 `json:"energy_covered_demand" yaml:"energy_covered_demand"`
	SelfConsumptionInitial float64 `json:"self_consumption_initial" yaml:"self_consumption_initial"`

	EfficiencyDirectUsage float64 `json:"efficiency_direct_usage" yaml:"efficiency_direct_usage"`
	EfficiencyCharging    float64 `json:"efficiency_charging" yaml:"efficiency_charging"`
	EfficiencyDischarging float64 `json:"efficiency_discharging" yaml:"efficiency_discharging"`
}

// Curve is the capacity/effectiveness curve produced by the external analysis engine.
// Entries are ordered by increasing capacity, and local effectiveness must be
// non-increasing along that order. Implementations are read-only.
type Curve interface {
	Len() int
	Capacity(i int) float64
	EffectivenessLocal(i int) float64
	EnergyAdditional(i int) float64
	Horizon() Horizon
}

// CurvePoint is one candidate storage capacity (Wh) of a curve.
type CurvePoint struct {
	Capacity           float64 `json:"capacity" yaml:"capacity"`
	EffectivenessLocal float64 `json:"effectiveness_local" yaml:"effectiveness_local"`
	EnergyAdditional   float64 `json:"energy_additional" yaml:"energy_additional"`
}

// CurveTable is the in-memory Curve used by the loaders and the API.
type CurveTable struct {
	Name   string       `json:"name,omitempty" yaml:"name,omitempty"`
	Totals Horizon      `json:"horizon" yaml:"horizon"`
	Points []CurvePoint `json:"points" yaml:"points"`
}

func (t *CurveTable) Len() int                         { return len(t.Points) }
func (t *CurveTable) Capacity(i int) float64           { return t.Points[i].Capacity }
func (t *CurveTable) EffectivenessLocal(i int) float64 { return t.Points[i].EffectivenessLocal }
func (t *CurveTable) EnergyAdditional(i int) float64   { return t.Points[i].EnergyAdditional }
func (t *CurveTable) Horizon() Horizon                 { return t.Totals }

// Columns copies the per-capacity fields of c into three parallel slices.
func Columns(c Curve) (capacity, effectivenessLocal, energyAdditional []float64) {
	n := c.Len()
	capacity = make([]float64, n)
	effectivenessLocal = make([]float64, n)
	energyAdditional = make([]float64, n)
	for i := 0; i < n; i++ {
		capacity[i] = c.Capacity(i)
		effectivenessLocal[i] = c.EffectivenessLocal(i)
		energyAdditional[i] = c.EnergyAdditional(i)
	}
	return capacity, effectivenessLocal, energyAdditional
}

var ErrCurveOrder = errors.New("curve ordering violated")

// CheckMonotone reports the first entry that breaks the curve ordering:
// capacity must increase strictly and local effectiveness must not increase.
// The optimizer does not call this; drivers use it to warn about bad input.
func CheckMonotone(c Curve) error {
	for i := 1; i < c.Len(); i++ {
		if c.Capacity(i) <= c.Capacity(i-1) {
			return fmt.Errorf("%w: capacity at index %d (%g) is not above index %d (%g)",
				ErrCurveOrder, i, c.Capacity(i), i-1, c.Capacity(i-1))
		}
		if c.EffectivenessLocal(i) > c.EffectivenessLocal(i-1) {
			return fmt.Errorf("%w: effectiveness_local rises at index %d (%g > %g)",
				ErrCurveOrder, i, c.EffectivenessLocal(i), c.EffectivenessLocal(i-1))
		}
	}
	return nil
}
