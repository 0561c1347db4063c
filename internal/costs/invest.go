package costs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an investment basis is ambiguous or incomplete.
var ErrInvalidArgument = errors.New("invalid argument")

// InvestBasis describes how an investment is given: either as a total cost
// spread over an amount of energy, or directly as a price per energy unit.
// Exactly one of the two forms must be set.
type InvestBasis struct {
	Energy           *float64 // Wh
	CostsInvestTotal *float64 // currency
	PricePerEnergy   *float64 // currency/Wh
}

// TotalInvest is a basis of total investment costs over the given energy.
func TotalInvest(costsInvestTotal, energy float64) InvestBasis {
	return InvestBasis{Energy: &energy, CostsInvestTotal: &costsInvestTotal}
}

// PerEnergyInvest is a basis of an investment price per unit of energy (or capacity).
func PerEnergyInvest(pricePerEnergy float64) InvestBasis {
	return InvestBasis{PricePerEnergy: &pricePerEnergy}
}

func (b InvestBasis) validate() error {
	hasEnergy := b.Energy != nil
	hasTotal := b.CostsInvestTotal != nil
	hasPrice := b.PricePerEnergy != nil
	switch {
	case hasEnergy != hasTotal:
		return fmt.Errorf("%w: energy and costs_invest_total must be given together", ErrInvalidArgument)
	case hasTotal && hasPrice:
		return fmt.Errorf("%w: give either costs_invest_total and energy or price_invest_per_energy, not both", ErrInvalidArgument)
	case !hasTotal && !hasPrice:
		return fmt.Errorf("%w: either costs_invest_total and energy or price_invest_per_energy must be given", ErrInvalidArgument)
	}
	return nil
}

// RelativeInvestPrice amortizes an investment linearly over its own lifetime
// timeInvest and re-expresses it per energy unit over the analysis horizon timeTotal.
// No discounting and no residual value.
func RelativeInvestPrice(timeInvest, timeTotal float64, basis InvestBasis) (float64, error) {
	if err := basis.validate(); err != nil {
		return 0, err
	}
	var price float64
	if basis.PricePerEnergy != nil {
		price = *basis.PricePerEnergy
	} else {
		price = *basis.CostsInvestTotal / *basis.Energy
	}
	return price * timeTotal / timeInvest, nil
}
