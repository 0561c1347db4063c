package analysis

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"

	"golang.org/x/sync/errgroup"
)

// Scenario is one named set of optimizer inputs.
type Scenario struct {
	Name   string
	Inputs model.OptimizeInputs
}

type ScenarioResult struct {
	Name   string
	Result *optimizer.Result
}

type RankedScenario struct {
	Rank int // 1-based
	ScenarioResult
}

// RunScenarios evaluates all scenarios concurrently and returns results in input order.
func RunScenarios(ctx context.Context, scenarios []Scenario) ([]ScenarioResult, error) {
	engine := optimizer.New()
	out := make([]ScenarioResult, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := engine.Run(s.Inputs.Curve, s.Inputs.Tariff)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			out[i] = ScenarioResult{Name: s.Name, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Rank sorts ascending by CostsMinimal, ties by name. NaN costs sort last.
func Rank(results []ScenarioResult) []RankedScenario {
	out := make([]RankedScenario, 0, len(results))
	for _, r := range results {
		out = append(out, RankedScenario{ScenarioResult: r})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Result.CostsMinimal, out[j].Result.CostsMinimal
		if an, bn := math.IsNaN(a), math.IsNaN(b); an || bn {
			if an != bn {
				return !an
			}
		} else if a != b {
			return a < b
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
