package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storage-sizing/internal/config"
	"storage-sizing/internal/data"
	"storage-sizing/internal/logging"
	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"
	"storage-sizing/internal/report"
)

// Demo:
// - Build the example house curve (0..10 kWh storage, one year)
// - Run the optimizer with the example German household tariff
// - Print every derived quantity, the summary and the cost table
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional, overrides the example tariff)")
	outCSV := flag.String("out", "", "Optional path to write the cost table CSV (e.g. results/costs.csv)")
	saveCurve := flag.String("save-curve", "", "Optional path to export the example curve (e.g. examples/curves/example-house.json)")
	flag.Parse()

	logger := logging.New(os.Stderr, slog.LevelInfo, logging.FormatText)

	tariff := model.ExampleTariff()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logger.Error("failed to load config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
		tariff = cfg.Tariff.ToModelTariff()
	}

	curve := model.ExampleHouseCurve()
	if *saveCurve != "" {
		if err := data.SaveCurve(curve, *saveCurve); err != nil {
			logger.Error("failed to save curve", "path", *saveCurve, "error", err)
			os.Exit(1)
		}
		logger.Info("saved example curve", "path", *saveCurve)
	}
	res, err := optimizer.New().Run(curve, tariff,
		optimizer.WithObserver(logging.NewObserver(logger, slog.LevelInfo)))
	if err != nil {
		logger.Error("optimize failed", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	if err := report.WriteSummary(os.Stdout, res); err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Printf("%-3s %-10s %-10s %-14s %-14s %-14s\n", "ix", "capacity", "eff_local", "energy_add", "costs_add", "costs_total")
	for _, r := range res.Rows() {
		marker := ""
		if r.Optimal {
			marker = "  <- optimal"
		}
		fmt.Printf("%-3d %-10.0f %-10.1f %-14.0f %-14.2f %-14.2f%s\n",
			r.Index, r.Capacity, r.EffectivenessLocal, r.EnergyAdditional, r.CostsAdditional, r.CostsTotal, marker)
	}

	if *outCSV != "" {
		if err := report.WriteCostsCSVFile(*outCSV, res.Rows()); err != nil {
			logger.Error("failed to write CSV", "path", *outCSV, "error", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(res.Capacity), *outCSV)
	}
}
