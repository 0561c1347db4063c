package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"storage-sizing/internal/model"
)

// SaveCurve writes c to path in the format picked by its extension,
// creating the parent directory if needed.
func SaveCurve(c *model.CurveTable, path string) error {
	var (
		raw []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err = json.MarshalIndent(c, "", "  ")
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("unsupported curve file extension: %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal curve: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write curve file: %w", err)
	}
	return nil
}
