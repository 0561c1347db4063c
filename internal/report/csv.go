package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"storage-sizing/internal/optimizer"
)

var costsHeader = []string{
	"index",
	"capacity_wh",
	"effectiveness_local",
	"energy_additional_wh",
	"costs_additional",
	"costs_total",
	"costs_levelized",
	"optimal",
}

// WriteCostsCSVFile writes the per-capacity cost table to path.
func WriteCostsCSVFile(path string, rows []optimizer.CostRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCostsCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func WriteCostsCSV(out io.Writer, rows []optimizer.CostRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(costsHeader); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.Capacity),
			fmtFloat(r.EffectivenessLocal),
			fmtFloat(r.EnergyAdditional),
			fmtFloat(r.CostsAdditional),
			fmtFloat(r.CostsTotal),
			fmtFloat(r.CostsLevelized),
			strconv.FormatBool(r.Optimal),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// fmtFloat keeps six decimals; NaN and Inf are written as Go prints them.
func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
