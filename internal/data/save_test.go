package data

import (
	"path/filepath"
	"testing"

	"storage-sizing/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCurveRoundTrip(t *testing.T) {
	want := model.ExampleHouseCurve()
	dir := t.TempDir()

	for _, name := range []string{"house.json", "nested/house.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveCurve(want, path))

		got, err := LoadCurve(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestSaveCurveUnsupportedExtension(t *testing.T) {
	err := SaveCurve(model.ExampleHouseCurve(), filepath.Join(t.TempDir(), "house.csv"))
	assert.ErrorContains(t, err, "unsupported curve file extension")
}
