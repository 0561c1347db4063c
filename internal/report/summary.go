package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// WriteSummary prints the inputs and headline results of a run in a
// human-readable form. Energies use SI prefixes, money is rounded to cents.
func WriteSummary(w io.Writer, res *optimizer.Result) error {
	in := res.Inputs
	h := res.Horizon
	lines := []string{
		"Input parameters:",
		kv("price_import", fmt.Sprintf("%s/kWh", money(in.PriceImport*1000, 4))),
		kv("price_export", fmt.Sprintf("%s/kWh", money(in.PriceExport*1000, 4))),
		kv("efficiency_import", ratio(in.EfficiencyImport)),
		kv("efficiency_export", ratio(in.EfficiencyExport)),
		kv("costs_invest_total_res", money(in.CostsInvestTotalRES, 2)),
		kv("time_invest_res", fmt.Sprintf("%s h (%s a)", ratio(in.TimeInvestRES), ratio(in.TimeInvestRES/model.HoursPerYear))),
		kv("price_invest_total_ees", fmt.Sprintf("%s/kWh", money(in.PriceInvestTotalEES*1000, 2))),
		kv("time_invest_ees", fmt.Sprintf("%s h (%s a)", ratio(in.TimeInvestEES), ratio(in.TimeInvestEES/model.HoursPerYear))),
		"",
		"Horizon:",
		kv("time_total", fmt.Sprintf("%s h (%s d)", ratio(h.TimeTotal), ratio(model.HoursToDays(h.TimeTotal)))),
		kv("energy_generation", energy(h.EnergyGeneration)),
		kv("energy_demand", energy(h.EnergyDemand)),
		kv("energy_used_generation", energy(h.EnergyUsedGeneration)),
		kv("energy_covered_demand", energy(h.EnergyCoveredDemand)),
		kv("self_consumption_initial", ratio(h.SelfConsumptionInitial)),
		"",
		"Results:",
		kv("costs_ref", money(res.CostsRef, 2)),
		kv("costs_0", money(res.Costs0, 2)),
		kv("ratio_export_to_import", ratio(res.RatioExportToImport)),
		kv("ratio_invest_res", ratio(res.RatioInvestRES)),
		kv("ratio_invest_ees", ratio(res.RatioInvestEES)),
		kv("ratio_additional", ratio(res.RatioAdditional)),
		kv("effectiveness_optimal", ratio(res.EffectivenessOptimal)),
		kv("ix_costs_minimal", strconv.Itoa(res.IxCostsMinimal)),
		kv("capacity_optimal", energy(res.CapacityOptimal)),
		kv("costs_minimal", money(res.CostsMinimal, 2)),
		kv("threshold_reached", strconv.FormatBool(res.ThresholdReached)),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func kv(k, v string) string {
	return fmt.Sprintf("  %-26s %s", k+":", v)
}

func energy(wh float64) string {
	if !finite(wh) {
		return fmt.Sprint(wh)
	}
	return humanize.SIWithDigits(wh, 2, "Wh")
}

// money rounds half away from zero; decimal cannot represent NaN/Inf so those pass through.
func money(x float64, places int32) string {
	if !finite(x) {
		return fmt.Sprint(x)
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}

func ratio(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
