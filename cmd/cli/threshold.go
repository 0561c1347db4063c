package main

import (
	"fmt"
	"io"

	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"
	"storage-sizing/internal/report"

	"github.com/spf13/cobra"
)

var (
	timeTotalHours        float64
	efficiencyCharging    float64
	efficiencyDischarging float64
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold",
	Short: "Print the break-even local effectiveness for a tariff",
	Long: `Compute the optimal effectiveness threshold without a curve: every storage
step whose local effectiveness is above it pays for itself.

Example:
  storage-sizing threshold --config examples/config.yaml --efficiency-charging 0.95 --efficiency-discharging 0.95`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runThreshold(cmd.OutOrStdout(), cfg.Tariff.ToModelTariff(), timeTotalHours, efficiencyCharging, efficiencyDischarging, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(thresholdCmd)
	thresholdCmd.Flags().Float64Var(&timeTotalHours, "time-total-hours", model.HoursPerYear, "Length of the simulated horizon in hours")
	thresholdCmd.Flags().Float64Var(&efficiencyCharging, "efficiency-charging", 1.0, "Storage charging efficiency")
	thresholdCmd.Flags().Float64Var(&efficiencyDischarging, "efficiency-discharging", 1.0, "Storage discharging efficiency")
}

func runThreshold(w io.Writer, t model.Tariff, timeTotal, etaCh, etaDis float64, jsonOut bool) error {
	th, err := optimizer.ComputeThreshold(t, timeTotal, etaCh, etaDis)
	if err != nil {
		return err
	}
	if jsonOut {
		return report.EncodeJSON(w, map[string]any{
			"price_invest_ees":      th.PriceInvestEES,
			"price_additional":      th.PriceAdditional,
			"ratio_additional":      th.RatioAdditional,
			"effectiveness_optimal": th.EffectivenessOptimal,
		})
	}
	fmt.Fprintf(w, "price_invest_ees:      %g\n", th.PriceInvestEES)
	fmt.Fprintf(w, "price_additional:      %g\n", th.PriceAdditional)
	fmt.Fprintf(w, "ratio_additional:      %g\n", th.RatioAdditional)
	fmt.Fprintf(w, "effectiveness_optimal: %g\n", th.EffectivenessOptimal)
	return nil
}
