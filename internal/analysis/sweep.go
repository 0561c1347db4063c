package analysis

import (
	"context"
	"fmt"
	"runtime"

	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"

	"golang.org/x/sync/errgroup"
)

// Param names one tariff quantity that can be varied in a sweep.
type Param string

const (
	ParamPriceImport    Param = "price_import"
	ParamPriceExport    Param = "price_export"
	ParamPriceInvestEES Param = "price_invest_ees"
	ParamCostsInvestRES Param = "costs_invest_res"
)

func Params() []Param {
	return []Param{ParamPriceImport, ParamPriceExport, ParamPriceInvestEES, ParamCostsInvestRES}
}

func ParseParam(s string) (Param, error) {
	for _, p := range Params() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown sweep parameter %q (expected one of %v)", s, Params())
}

// FromHuman converts a value given in config units (ct/kWh, currency/kWh,
// currency) to the base units of model.Tariff.
func (p Param) FromHuman(v float64) float64 {
	switch p {
	case ParamPriceImport, ParamPriceExport:
		return model.CtPerKWhToPerWh(v)
	case ParamPriceInvestEES:
		return model.PerKWhToPerWh(v)
	default:
		return v
	}
}

// Apply returns a copy of t with the parameter set to v (base units).
func (p Param) Apply(t model.Tariff, v float64) (model.Tariff, error) {
	switch p {
	case ParamPriceImport:
		t.PriceImport = v
	case ParamPriceExport:
		t.PriceExport = v
	case ParamPriceInvestEES:
		t.PriceInvestTotalEES = v
	case ParamCostsInvestRES:
		t.CostsInvestTotalRES = v
	default:
		return t, fmt.Errorf("unknown sweep parameter %q", string(p))
	}
	return t, nil
}

type SweepPoint struct {
	Value  float64
	Result *optimizer.Result
}

// Sweep re-runs the optimizer once per value of p, at most limit runs at a
// time (limit <= 0 means GOMAXPROCS). Points are returned in the order of values.
func Sweep(ctx context.Context, in model.OptimizeInputs, p Param, values []float64, limit int) ([]SweepPoint, error) {
	tariffs := make([]model.Tariff, len(values))
	for i, v := range values {
		t, err := p.Apply(in.Tariff, v)
		if err != nil {
			return nil, err
		}
		tariffs[i] = t
	}

	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	engine := optimizer.New()
	out := make([]SweepPoint, len(values))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := engine.Run(in.Curve, tariffs[i])
			if err != nil {
				return fmt.Errorf("%s=%g: %w", p, values[i], err)
			}
			out[i] = SweepPoint{Value: values[i], Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
