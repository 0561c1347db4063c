package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"storage-sizing/internal/analysis"
	"storage-sizing/internal/config"
	"storage-sizing/internal/model"
	"storage-sizing/internal/report"

	"github.com/spf13/cobra"
)

var variations []string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank tariff variations by minimal total costs",
	Long: `Run the config tariff ("base") and every --variation on the same curve,
then rank them by minimal total costs.

A variation is name=key:value[,key:value...] with keys as in the tariff
section of the config.

Example:
  storage-sizing compare --config examples/config.yaml \
    --variation cheap-storage=price_invest_ees_per_kwh:400 \
    --variation high-feed-in=price_export_ct_per_kwh:12,efficiency_export:0.97`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		curve, err := loadCurve(cfg, curvePath, os.Stdin, logger)
		if err != nil {
			return err
		}
		scenarios, err := buildScenarios(curve, cfg.Tariff, variations)
		if err != nil {
			return err
		}
		return runCompare(cmd.Context(), cmd.OutOrStdout(), scenarios, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&curvePath, "curve", "", "Curve file (JSON/YAML); overrides curve_file")
	compareCmd.Flags().StringArrayVar(&variations, "variation", nil, "Tariff variation name=key:value,... (repeatable)")
}

var variationKeys = map[string]func(t *config.TariffConfig, v float64){
	"price_import_ct_per_kwh":  func(t *config.TariffConfig, v float64) { t.PriceImportCtPerKWh = v },
	"price_export_ct_per_kwh":  func(t *config.TariffConfig, v float64) { t.PriceExportCtPerKWh = v },
	"efficiency_import":        func(t *config.TariffConfig, v float64) { t.EfficiencyImport = &v },
	"efficiency_export":        func(t *config.TariffConfig, v float64) { t.EfficiencyExport = &v },
	"costs_invest_res":         func(t *config.TariffConfig, v float64) { t.CostsInvestRES = v },
	"lifetime_res_years":       func(t *config.TariffConfig, v float64) { t.LifetimeRESYears = v },
	"price_invest_ees_per_kwh": func(t *config.TariffConfig, v float64) { t.PriceInvestEESPerKWh = v },
	"lifetime_ees_years":       func(t *config.TariffConfig, v float64) { t.LifetimeEESYears = v },
}

// parseVariation applies "name=key:value,key:value" onto a copy of base.
// Unlike config.MergeTariff, explicit zeros are applied.
func parseVariation(base config.TariffConfig, s string) (string, config.TariffConfig, error) {
	name, pairs, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", base, fmt.Errorf("invalid variation %q: expected name=key:value,...", s)
	}
	t := base
	t.Name = name
	for _, kv := range strings.Split(pairs, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, raw, ok := strings.Cut(kv, ":")
		if !ok {
			return "", base, fmt.Errorf("variation %q: invalid pair %q, expected key:value", name, kv)
		}
		set, known := variationKeys[strings.TrimSpace(k)]
		if !known {
			return "", base, fmt.Errorf("variation %q: unknown key %q", name, k)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return "", base, fmt.Errorf("variation %q: %s: %w", name, k, err)
		}
		set(&t, v)
	}
	return name, t, nil
}

func buildScenarios(curve model.Curve, base config.TariffConfig, flagValues []string) ([]analysis.Scenario, error) {
	scenarios := []analysis.Scenario{{
		Name:   "base",
		Inputs: model.OptimizeInputs{Curve: curve, Tariff: base.ToModelTariff()},
	}}
	for _, s := range flagValues {
		name, tc, err := parseVariation(base, s)
		if err != nil {
			return nil, err
		}
		t := tc.ToModelTariff()
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("variation %q: %w", name, err)
		}
		scenarios = append(scenarios, analysis.Scenario{
			Name:   name,
			Inputs: model.OptimizeInputs{Curve: curve, Tariff: t},
		})
	}
	return scenarios, nil
}

func runCompare(ctx context.Context, w io.Writer, scenarios []analysis.Scenario, jsonOut bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := analysis.RunScenarios(ctx, scenarios)
	if err != nil {
		return err
	}
	ranked := analysis.Rank(results)

	if jsonOut {
		rows := make([]any, len(ranked))
		for i, r := range ranked {
			rows[i] = map[string]any{
				"rank":                  r.Rank,
				"name":                  r.Name,
				"capacity_optimal":      r.Result.CapacityOptimal,
				"costs_minimal":         r.Result.CostsMinimal,
				"effectiveness_optimal": r.Result.EffectivenessOptimal,
				"threshold_reached":     r.Result.ThresholdReached,
			}
		}
		return report.EncodeJSON(w, rows)
	}

	fmt.Fprintf(w, "%-4s %-20s %-14s %-14s %-12s\n", "rank", "name", "capacity_wh", "costs_minimal", "eff_optimal")
	for _, r := range ranked {
		fmt.Fprintf(w, "%-4d %-20s %-14.0f %-14.2f %-12.3f\n",
			r.Rank,
			r.Name,
			r.Result.CapacityOptimal,
			r.Result.CostsMinimal,
			r.Result.EffectivenessOptimal,
		)
	}
	return nil
}
