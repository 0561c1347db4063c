package report

import (
	"io"

	"storage-sizing/internal/optimizer"

	"github.com/goccy/go-json"
)

// WriteJSON writes res.Fields() as indented JSON plus a "costs" table.
// NaN and ±Inf are written as null.
func WriteJSON(w io.Writer, res *optimizer.Result) error {
	fields := res.Fields()
	fields["costs"] = res.Rows()
	return EncodeJSON(w, fields)
}

// EncodeJSON encodes v with non-finite floats replaced by null.
// v may be a map, slice or any JSON-encodable value.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sanitize(v))
}

func sanitize(v any) any {
	switch x := v.(type) {
	case float64:
		if !finite(x) {
			return nil
		}
		return x
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = sanitize(f)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = sanitize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = sanitize(e)
		}
		return out
	case []optimizer.CostRow:
		out := make([]any, len(x))
		for i, r := range x {
			out[i] = map[string]any{
				"index":               r.Index,
				"capacity":            sanitize(r.Capacity),
				"effectiveness_local": sanitize(r.EffectivenessLocal),
				"energy_additional":   sanitize(r.EnergyAdditional),
				"costs_additional":    sanitize(r.CostsAdditional),
				"costs_total":         sanitize(r.CostsTotal),
				"costs_levelized":     sanitize(r.CostsLevelized),
				"optimal":             r.Optimal,
			}
		}
		return out
	default:
		return v
	}
}
