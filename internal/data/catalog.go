package data

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CurveInfo describes a curve file available to the API.
type CurveInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	File   string `json:"file"`
	Points int    `json:"points"`
}

// DefaultCurveDir returns CURVE_DIR or ./examples/curves, made absolute when possible.
func DefaultCurveDir() string {
	dir := os.Getenv("CURVE_DIR")
	if dir == "" {
		dir = filepath.Join("examples", "curves")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ListCurves loads every curve file in dir. Unreadable files are skipped and logged.
func ListCurves(dir string) ([]CurveInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve directory: %w", err)
	}
	out := []CurveInfo{}
	for _, e := range entries {
		if e.IsDir() || !isCurveFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		c, err := LoadCurve(path)
		if err != nil {
			slog.Warn("skipping curve file", "path", path, "error", err)
			continue
		}
		out = append(out, CurveInfo{
			ID:     curveID(path),
			Name:   c.Name,
			File:   path,
			Points: c.Len(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindCurve resolves a curve id (file name without extension) inside dir.
func FindCurve(dir, id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("invalid curve id %q", id)
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("curve %q not found: %w", id, os.ErrNotExist)
}

func isCurveFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
