package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"storage-sizing/internal/analysis"
	"storage-sizing/internal/model"
	"storage-sizing/internal/report"

	"github.com/spf13/cobra"
)

var (
	sweepParam  string
	sweepValues []float64
	sweepLimit  int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Re-run the optimizer over a range of one tariff parameter",
	Long: `Vary one tariff parameter and report the optimal capacity for each value.
Values are given in config units: ct/kWh for prices, currency/kWh for storage
investment, currency for the PV investment.

Example:
  storage-sizing sweep --config examples/config.yaml --param price_invest_ees --values 200,400,800`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		p, err := analysis.ParseParam(sweepParam)
		if err != nil {
			return err
		}
		curve, err := loadCurve(cfg, curvePath, os.Stdin, logger)
		if err != nil {
			return err
		}
		in := model.OptimizeInputs{Curve: curve, Tariff: cfg.Tariff.ToModelTariff()}
		return runSweep(ctx, cmd.OutOrStdout(), in, p, sweepValues, sweepLimit, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringVar(&curvePath, "curve", "", "Curve file (JSON/YAML); overrides curve_file")
	sweepCmd.Flags().StringVar(&sweepParam, "param", string(analysis.ParamPriceInvestEES), fmt.Sprintf("Parameter to vary, one of %v", analysis.Params()))
	sweepCmd.Flags().Float64SliceVar(&sweepValues, "values", nil, "Comma-separated values in config units")
	sweepCmd.Flags().IntVar(&sweepLimit, "parallel", 0, "Maximum concurrent runs (0 = GOMAXPROCS)")
	_ = sweepCmd.MarkFlagRequired("values")
}

func runSweep(ctx context.Context, w io.Writer, in model.OptimizeInputs, p analysis.Param, human []float64, limit int, jsonOut bool) error {
	values := make([]float64, len(human))
	for i, v := range human {
		values[i] = p.FromHuman(v)
	}
	points, err := analysis.Sweep(ctx, in, p, values, limit)
	if err != nil {
		return err
	}

	if jsonOut {
		rows := make([]any, len(points))
		for i, pt := range points {
			rows[i] = map[string]any{
				string(p):               human[i],
				"capacity_optimal":      pt.Result.CapacityOptimal,
				"costs_minimal":         pt.Result.CostsMinimal,
				"effectiveness_optimal": pt.Result.EffectivenessOptimal,
				"threshold_reached":     pt.Result.ThresholdReached,
			}
		}
		return report.EncodeJSON(w, rows)
	}

	fmt.Fprintf(w, "%-18s %-14s %-14s %-12s %-8s\n", p, "capacity_wh", "costs_minimal", "eff_optimal", "reached")
	for i, pt := range points {
		fmt.Fprintf(w, "%-18g %-14.0f %-14.2f %-12.3f %-8t\n",
			human[i],
			pt.Result.CapacityOptimal,
			pt.Result.CostsMinimal,
			pt.Result.EffectivenessOptimal,
			pt.Result.ThresholdReached,
		)
	}
	return nil
}
