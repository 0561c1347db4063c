package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"storage-sizing/internal/logging"
	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"
	"storage-sizing/internal/report"

	"github.com/spf13/cobra"
)

var outPath string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the cost-optimal storage capacity",
	Long: `Run the optimizer on one curve and tariff and print the summary.

Example:
  storage-sizing optimize --config examples/config.yaml --out results/costs.csv`,
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
		in := model.OptimizeInputs{Curve: curve, Tariff: cfg.Tariff.ToModelTariff()}
		return runOptimize(cmd.OutOrStdout(), in, outPath, IsJSONOutput(), logger)
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringVar(&curvePath, "curve", "", `Curve file (JSON/YAML), "-" for JSON on stdin; overrides curve_file`)
	optimizeCmd.Flags().StringVar(&outPath, "out", "", "Optional: write the per-capacity cost table as CSV")
}

func runOptimize(w io.Writer, in model.OptimizeInputs, out string, jsonOut bool, logger *slog.Logger) error {
	res, err := optimizer.New().Run(in.Curve, in.Tariff,
		optimizer.WithObserver(logging.NewObserver(logger, slog.LevelDebug)))
	if err != nil {
		return err
	}

	if out != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := report.WriteCostsCSVFile(out, res.Rows()); err != nil {
			return err
		}
		logger.Info("wrote cost table", "path", out, "rows", len(res.Capacity))
	}
	if !res.ThresholdReached {
		logger.Warn("optimal effectiveness not reached on this curve, largest capacity selected",
			"effectiveness_optimal", res.EffectivenessOptimal,
			"effectiveness_last", res.EffectivenessLocal[len(res.EffectivenessLocal)-1])
	}

	if jsonOut {
		return report.WriteJSON(w, res)
	}
	return report.WriteSummary(w, res)
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
