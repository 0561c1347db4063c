package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storage-sizing/internal/analysis"
	"storage-sizing/internal/config"
	"storage-sizing/internal/model"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func exampleInputs() model.OptimizeInputs {
	return model.OptimizeInputs{Curve: model.ExampleHouseCurve(), Tariff: model.ExampleTariff()}
}

func baseTariffConfig() config.TariffConfig {
	eff := 0.95
	return config.TariffConfig{
		PriceImportCtPerKWh:  31.46,
		PriceExportCtPerKWh:  8.11,
		EfficiencyExport:     &eff,
		CostsInvestRES:       15000,
		LifetimeRESYears:     20,
		PriceInvestEESPerKWh: 800,
		LifetimeEESYears:     15,
	}
}

func TestRunOptimizeSummaryAndCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results", "costs.csv")

	var buf bytes.Buffer
	require.NoError(t, runOptimize(&buf, exampleInputs(), out, false, discardLogger()))
	assert.Contains(t, buf.String(), "Results:")
	assert.Contains(t, buf.String(), "5 kWh")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 12)
}

func TestRunOptimizeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runOptimize(&buf, exampleInputs(), "", true, discardLogger()))

	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, 5000.0, res["capacity_optimal"])
}

func TestRunOptimizeEmptyCurve(t *testing.T) {
	in := model.OptimizeInputs{Curve: &model.CurveTable{}, Tariff: model.ExampleTariff()}
	err := runOptimize(io.Discard, in, "", false, discardLogger())
	assert.ErrorContains(t, err, "empty curve")
}

func TestRunThreshold(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runThreshold(&buf, model.ExampleTariff(), model.HoursPerYear, 0.95, 0.95, true))

	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.InDelta(t, 244.9, res["effectiveness_optimal"].(float64), 0.1)

	buf.Reset()
	require.NoError(t, runThreshold(&buf, model.ExampleTariff(), model.HoursPerYear, 0.95, 0.95, false))
	assert.Contains(t, buf.String(), "effectiveness_optimal:")
}

func TestRunSweep(t *testing.T) {
	var buf bytes.Buffer
	err := runSweep(context.Background(), &buf, exampleInputs(), analysis.ParamPriceInvestEES, []float64{200, 800}, 1, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "price_invest_ees"))
	assert.True(t, strings.HasPrefix(lines[1], "200"))
	assert.True(t, strings.HasPrefix(lines[2], "800"))
	assert.Contains(t, lines[2], "5000")
}

func TestRunSweepJSON(t *testing.T) {
	var buf bytes.Buffer
	err := runSweep(context.Background(), &buf, exampleInputs(), analysis.ParamPriceImport, []float64{25, 31.46}, 0, true)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 31.46, rows[1]["price_import"])
	assert.Equal(t, 5000.0, rows[1]["capacity_optimal"])
}

func TestParseVariation(t *testing.T) {
	base := baseTariffConfig()

	name, tc, err := parseVariation(base, "no-feed-in=price_export_ct_per_kwh:0, efficiency_import:0.9")
	require.NoError(t, err)
	assert.Equal(t, "no-feed-in", name)
	assert.Equal(t, 0.0, tc.PriceExportCtPerKWh)
	assert.Equal(t, 0.9, tc.GetEfficiencyImport())
	assert.Equal(t, 8.11, base.PriceExportCtPerKWh, "base is unchanged")
	assert.Equal(t, 1.0, base.GetEfficiencyImport())

	tests := []string{
		"missing-equals",
		"=price_import_ct_per_kwh:1",
		"bad=price_import_ct_per_kwh",
		"bad=unknown_key:1",
		"bad=price_import_ct_per_kwh:abc",
	}
	for _, s := range tests {
		_, _, err := parseVariation(base, s)
		assert.Error(t, err, s)
	}
}

func TestBuildScenariosAndCompare(t *testing.T) {
	scenarios, err := buildScenarios(model.ExampleHouseCurve(), baseTariffConfig(), []string{
		"cheap-storage=price_invest_ees_per_kwh:300",
		"pricey-import=price_import_ct_per_kwh:45",
	})
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "base", scenarios[0].Name)

	var buf bytes.Buffer
	require.NoError(t, runCompare(context.Background(), &buf, scenarios, false))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "1"))
}

func TestBuildScenariosInvalidVariation(t *testing.T) {
	_, err := buildScenarios(model.ExampleHouseCurve(), baseTariffConfig(), []string{"broken=lifetime_ees_years:0"})
	assert.ErrorContains(t, err, "broken")
}

func TestLoadCurve(t *testing.T) {
	raw, err := json.Marshal(model.ExampleHouseCurve())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "house.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg := &config.Config{CurveFile: path}
	c, err := loadCurve(cfg, "", nil, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 11, c.Len())

	c, err = loadCurve(&config.Config{}, "-", bytes.NewReader(raw), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "example-house", c.Name)

	_, err = loadCurve(&config.Config{}, "", nil, discardLogger())
	assert.ErrorContains(t, err, "no curve given")
}

func TestLoadConfigRequiresFlag(t *testing.T) {
	cfgPath = ""
	_, err := loadConfig()
	assert.ErrorContains(t, err, "--config is required")
}
