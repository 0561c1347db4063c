package model

// OptimizeInputs represents a canonical "inputs to the system" object:
// the analysis curve from the upstream engine plus one tariff.
type OptimizeInputs struct {
	Curve  Curve
	Tariff Tariff
}
