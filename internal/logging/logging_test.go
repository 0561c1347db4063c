package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storage-sizing/internal/model"
	"storage-sizing/internal/optimizer"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromString("debug"))
	assert.Equal(t, slog.LevelWarn, LevelFromString("warning"))
	assert.Equal(t, slog.LevelWarn, LevelFromString(" WARN "))
	assert.Equal(t, slog.LevelError, LevelFromString("ERROR"))
	assert.Equal(t, slog.LevelInfo, LevelFromString(""))
	assert.Equal(t, slog.LevelInfo, LevelFromString("chatty"))
}

func TestFormatFromString(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromString("json"))
	assert.Equal(t, FormatText, FormatFromString("text"))
	assert.Equal(t, FormatText, FormatFromString(""))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, FormatJSON).Info("hello", "k", 1)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
}

func TestNewTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, FormatText)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestObserverLogsRun(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, FormatJSON)

	tariff := model.Tariff{
		PriceImport: 0.0003146, PriceExport: 0.0000811,
		EfficiencyImport: 1, EfficiencyExport: 0.95,
		CostsInvestTotalRES: 15000, TimeInvestRES: model.YearsToHours(20),
		PriceInvestTotalEES: 0.8, TimeInvestEES: model.YearsToHours(15),
	}
	_, err := optimizer.New().Run(model.ExampleHouseCurve(), tariff,
		optimizer.WithObserver(NewObserver(logger, slog.LevelDebug)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"effectiveness_optimal"`)
	assert.Contains(t, out, `"msg":"costs_total","len":11`)
	assert.Equal(t, 20, strings.Count(out, "\n"))
}

func TestObserverSkipsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewObserver(New(&buf, slog.LevelInfo, FormatJSON), slog.LevelDebug)
	obs.Observe("costs_ref", 1.0)
	assert.Empty(t, buf.String())
}
