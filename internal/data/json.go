package data

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"storage-sizing/internal/model"
)

// LoadCurve reads a curve file exported by the analysis engine.
// The format is picked by extension: .json, .yaml or .yml.
func LoadCurve(path string) (*model.CurveTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadCurveJSON(path)
	case ".yaml", ".yml":
		return LoadCurveYAML(path)
	default:
		return nil, fmt.Errorf("unsupported curve file extension: %q", filepath.Ext(path))
	}
}

func LoadCurveJSON(path string) (*model.CurveTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := DecodeCurveJSON(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse curve file %s: %w", path, err)
	}
	return nameFromPath(c, path), nil
}

func DecodeCurveJSON(r io.Reader) (*model.CurveTable, error) {
	var c model.CurveTable
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadCurveYAML(path string) (*model.CurveTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c model.CurveTable
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse curve file %s: %w", path, err)
	}
	return nameFromPath(&c, path), nil
}

func nameFromPath(c *model.CurveTable, path string) *model.CurveTable {
	if c.Name == "" {
		c.Name = curveID(path)
	}
	return c
}

// curveID is the file name without extension, e.g. "house_3y.json" -> "house_3y".
func curveID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
