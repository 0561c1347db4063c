package logging

import (
	"context"
	"log/slog"

	"gonum.org/v1/gonum/floats"
)

// Observer writes every intermediate quantity of an optimizer run to a logger.
// Series are summarized by length and range.
type Observer struct {
	logger *slog.Logger
	level  slog.Level
}

func NewObserver(logger *slog.Logger, level slog.Level) *Observer {
	return &Observer{logger: logger, level: level}
}

func (o *Observer) Observe(name string, value any) {
	if !o.logger.Enabled(context.Background(), o.level) {
		return
	}
	if vs, ok := value.([]float64); ok {
		if len(vs) == 0 {
			o.logger.Log(context.Background(), o.level, name, slog.Int("len", 0))
			return
		}
		o.logger.Log(context.Background(), o.level, name,
			slog.Int("len", len(vs)),
			slog.Float64("min", floats.Min(vs)),
			slog.Float64("max", floats.Max(vs)))
		return
	}
	o.logger.Log(context.Background(), o.level, name, slog.Any("value", value))
}
