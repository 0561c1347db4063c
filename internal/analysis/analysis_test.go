package analysis

import (
	"context"
	"math"
	"testing"

	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleInputs() model.OptimizeInputs {
	return model.OptimizeInputs{Curve: model.ExampleHouseCurve(), Tariff: model.ExampleTariff()}
}

func TestParseParam(t *testing.T) {
	p, err := ParseParam("price_invest_ees")
	require.NoError(t, err)
	assert.Equal(t, ParamPriceInvestEES, p)

	_, err = ParseParam("capacity")
	assert.ErrorContains(t, err, "unknown sweep parameter")
}

func TestParamFromHuman(t *testing.T) {
	assert.InDelta(t, 0.0003146, ParamPriceImport.FromHuman(31.46), 1e-15)
	assert.InDelta(t, 0.8, ParamPriceInvestEES.FromHuman(800), 1e-15)
	assert.Equal(t, 15000.0, ParamCostsInvestRES.FromHuman(15000))
}

func TestParamApply(t *testing.T) {
	base := model.ExampleTariff()
	got, err := ParamPriceExport.Apply(base, 0.0001)
	require.NoError(t, err)
	assert.Equal(t, 0.0001, got.PriceExport)
	assert.Equal(t, base.PriceImport, got.PriceImport)
	assert.Equal(t, 0.0000811, base.PriceExport, "base is unchanged")

	_, err = Param("nope").Apply(base, 1)
	assert.Error(t, err)
}

func TestSweepMatchesIndividualRuns(t *testing.T) {
	in := exampleInputs()
	values := []float64{0.2, 0.4, 0.8, 1.2, 1.6}

	points, err := Sweep(context.Background(), in, ParamPriceInvestEES, values, 2)
	require.NoError(t, err)
	require.Len(t, points, len(values))

	engine := optimizer.New()
	for i, p := range points {
		assert.Equal(t, values[i], p.Value)
		tr := in.Tariff
		tr.PriceInvestTotalEES = values[i]
		want, err := engine.Run(in.Curve, tr)
		require.NoError(t, err)
		assert.Equal(t, want.IxCostsMinimal, p.Result.IxCostsMinimal)
		assert.Equal(t, want.CostsMinimal, p.Result.CostsMinimal)
	}

	// cheaper storage never selects a smaller capacity
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t, points[i].Result.CapacityOptimal, points[i-1].Result.CapacityOptimal)
	}
}

func TestSweepEmptyCurve(t *testing.T) {
	in := model.OptimizeInputs{Curve: &model.CurveTable{}, Tariff: model.ExampleTariff()}
	_, err := Sweep(context.Background(), in, ParamPriceImport, []float64{0.0003}, 0)
	assert.ErrorIs(t, err, optimizer.ErrEmptyCurve)
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, exampleInputs(), ParamPriceImport, []float64{0.0003, 0.0004}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenariosAndRank(t *testing.T) {
	base := exampleInputs()
	cheap := base
	cheap.Tariff.PriceImport = model.CtPerKWhToPerWh(25)
	pricey := base
	pricey.Tariff.PriceImport = model.CtPerKWhToPerWh(40)

	results, err := RunScenarios(context.Background(), []Scenario{
		{Name: "pricey", Inputs: pricey},
		{Name: "base", Inputs: base},
		{Name: "cheap", Inputs: cheap},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "pricey", results[0].Name)

	ranked := Rank(results)
	require.Len(t, ranked, 3)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
		if i > 0 {
			assert.LessOrEqual(t, ranked[i-1].Result.CostsMinimal, r.Result.CostsMinimal)
		}
	}
}

func TestRankTiesAndNaN(t *testing.T) {
	results := []ScenarioResult{
		{Name: "b", Result: &optimizer.Result{CostsMinimal: 10}},
		{Name: "nan", Result: &optimizer.Result{CostsMinimal: math.NaN()}},
		{Name: "a", Result: &optimizer.Result{CostsMinimal: 10}},
		{Name: "low", Result: &optimizer.Result{CostsMinimal: -5}},
	}
	ranked := Rank(results)
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"low", "a", "b", "nan"}, names)
}
