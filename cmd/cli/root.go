package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"storage-sizing/internal/config"
	"storage-sizing/internal/data"
	"storage-sizing/internal/logging"
	"storage-sizing/internal/model"

	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	curvePath  string
	jsonOutput bool
	verbose    bool
	logLevel   string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "storage-sizing",
	Short: "Cost-optimal storage capacity for a PV system",
	Long: `storage-sizing picks the storage capacity that minimizes total system costs
for a given analysis curve (capacity, local effectiveness, additional energy)
and a flat grid tariff.

Tariffs are read from a YAML config in human units (ct/kWh, currency/kWh, years).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (required)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every derived quantity (implies --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides logging.level from the config)")
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return nil, errors.New("--config is required")
	}
	return config.Load(cfgPath)
}

// newLogger writes to stderr so stdout stays parseable with --json.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	lvl := logging.LevelFromString(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return logging.New(os.Stderr, lvl, logging.FormatFromString(cfg.Logging.Format))
}

// loadCurve reads the curve from --curve, falling back to curve_file from the config.
// "-" reads a JSON curve from stdin.
func loadCurve(cfg *config.Config, override string, stdin io.Reader, logger *slog.Logger) (*model.CurveTable, error) {
	path := cfg.CurveFile
	if override != "" {
		path = override
	}
	var (
		curve *model.CurveTable
		err   error
	)
	switch path {
	case "":
		return nil, errors.New("no curve given: set curve_file in the config or pass --curve")
	case "-":
		curve, err = data.DecodeCurveJSON(stdin)
	default:
		curve, err = data.LoadCurve(path)
	}
	if err != nil {
		return nil, err
	}
	if err := model.CheckMonotone(curve); err != nil {
		logger.Warn("curve is not monotone, threshold search may select a non-optimal capacity",
			"curve", curve.Name, "error", err)
	}
	return curve, nil
}
