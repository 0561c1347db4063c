package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"storage-sizing/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Path to the analysis curve (JSON or YAML). Relative paths are resolved
	// against the config file directory first.
	CurveFile string `yaml:"curve_file"`
	// Optional: load tariff parameters from a separate YAML (e.g. examples/tariffs/*.yaml).
	// If both TariffFile and Tariff are provided, Tariff overrides TariffFile.
	TariffFile string        `yaml:"tariff_file"`
	Tariff     TariffConfig  `yaml:"tariff"`
	Logging    LoggingConfig `yaml:"logging"`
}

// TariffConfig holds the tariff in the units people quote them in.
type TariffConfig struct {
	Name                 string   `yaml:"name"`
	PriceImportCtPerKWh  float64  `yaml:"price_import_ct_per_kwh"`
	PriceExportCtPerKWh  float64  `yaml:"price_export_ct_per_kwh"`
	EfficiencyImport     *float64 `yaml:"efficiency_import"` // default: 1.0
	EfficiencyExport     *float64 `yaml:"efficiency_export"` // default: 1.0
	CostsInvestRES       float64  `yaml:"costs_invest_res"`  // currency, whole PV plant
	LifetimeRESYears     float64  `yaml:"lifetime_res_years"`
	PriceInvestEESPerKWh float64  `yaml:"price_invest_ees_per_kwh"` // currency per kWh storage capacity
	LifetimeEESYears     float64  `yaml:"lifetime_ees_years"`
}

type LoggingConfig struct {
	// "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	Level string `yaml:"level"`
	// "TEXT", "JSON", default: "TEXT"
	Format string `yaml:"format"`
}

func (t TariffConfig) GetEfficiencyImport() float64 {
	if t.EfficiencyImport == nil {
		return model.DefaultEfficiencyImport
	}
	return *t.EfficiencyImport
}

func (t TariffConfig) GetEfficiencyExport() float64 {
	if t.EfficiencyExport == nil {
		return model.DefaultEfficiencyExport
	}
	return *t.EfficiencyExport
}

// ToModelTariff converts to base units: currency/Wh and hours.
func (t TariffConfig) ToModelTariff() model.Tariff {
	return model.Tariff{
		PriceImport:         model.CtPerKWhToPerWh(t.PriceImportCtPerKWh),
		PriceExport:         model.CtPerKWhToPerWh(t.PriceExportCtPerKWh),
		EfficiencyImport:    t.GetEfficiencyImport(),
		EfficiencyExport:    t.GetEfficiencyExport(),
		CostsInvestTotalRES: t.CostsInvestRES,
		TimeInvestRES:       model.YearsToHours(t.LifetimeRESYears),
		PriceInvestTotalEES: model.PerKWhToPerWh(t.PriceInvestEESPerKWh),
		TimeInvestEES:       model.YearsToHours(t.LifetimeEESYears),
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}
	if c.CurveFile != "" {
		c.CurveFile = resolve(path, c.CurveFile)
	}
	// If tariff_file is set, load it and merge in any explicit overrides from c.Tariff.
	if c.TariffFile != "" {
		loaded, err := LoadTariffFile(resolve(path, c.TariffFile))
		if err != nil {
			return nil, err
		}
		c.Tariff = MergeTariff(loaded, c.Tariff)
	}
	return &c, nil
}

// resolve interprets rel relative to the config file directory, falling back
// to the path as given (relative to cwd) if that doesn't exist.
func resolve(configPath, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	cand := filepath.Join(filepath.Dir(configPath), rel)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return rel
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Tariff.ToModelTariff().Validate(); err != nil {
		return fmt.Errorf("tariff config invalid: %w", err)
	}
	return nil
}

type tariffFileWrapper struct {
	Tariff TariffConfig `yaml:"tariff"`
}

func LoadTariffFile(path string) (TariffConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TariffConfig{}, err
	}
	var w tariffFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TariffConfig{}, fmt.Errorf("unable to parse tariff file: %w", err)
	}
	return w.Tariff, nil
}

// MergeTariff overlays non-zero fields from override onto base.
// This is used when loading a tariff file and then applying overrides from the config or a request.
func MergeTariff(base, override TariffConfig) TariffConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.PriceImportCtPerKWh != 0 {
		out.PriceImportCtPerKWh = override.PriceImportCtPerKWh
	}
	if override.PriceExportCtPerKWh != 0 {
		out.PriceExportCtPerKWh = override.PriceExportCtPerKWh
	}
	if override.EfficiencyImport != nil {
		out.EfficiencyImport = override.EfficiencyImport
	}
	if override.EfficiencyExport != nil {
		out.EfficiencyExport = override.EfficiencyExport
	}
	if override.CostsInvestRES != 0 {
		out.CostsInvestRES = override.CostsInvestRES
	}
	if override.LifetimeRESYears != 0 {
		out.LifetimeRESYears = override.LifetimeRESYears
	}
	if override.PriceInvestEESPerKWh != 0 {
		out.PriceInvestEESPerKWh = override.PriceInvestEESPerKWh
	}
	if override.LifetimeEESYears != 0 {
		out.LifetimeEESYears = override.LifetimeEESYears
	}
	return out
}
