// Package dataset turns loosely typed records into normalized series.
package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// Accessors name the record fields read by Normalize.
type Accessors struct {
	// ValueKey is the field holding the primary value. Defaults to "value".
	ValueKey string `json:"value_key,omitempty" yaml:"value_key,omitempty"`
	// LabelKey is the field holding the label. Defaults to "label".
	LabelKey string `json:"label_key,omitempty" yaml:"label_key,omitempty"`
	// MinKey is the optional field holding the lower secondary value.
	MinKey string `json:"min_key,omitempty" yaml:"min_key,omitempty"`
	// MaxKey is the optional field holding the upper secondary value.
	MaxKey string `json:"max_key,omitempty" yaml:"max_key,omitempty"`
	// DefaultLabel is the printf format for missing labels; it receives the
	// 1-based ordinal. Defaults to "Item %d".
	DefaultLabel string `json:"default_label,omitempty" yaml:"default_label,omitempty"`
}

// DefaultAccessors returns the default record accessors.
func DefaultAccessors() Accessors {
	return Accessors{
		ValueKey:     "value",
		LabelKey:     "label",
		DefaultLabel: "Item %d",
	}
}

func (a Accessors) withDefaults() Accessors {
	def := DefaultAccessors()
	if a.ValueKey == "" {
		a.ValueKey = def.ValueKey
	}
	if a.LabelKey == "" {
		a.LabelKey = def.LabelKey
	}
	if a.DefaultLabel == "" {
		a.DefaultLabel = def.DefaultLabel
	}
	return a
}

// Normalize coerces records into a Series. It never fails: unparseable
// numbers become 0 and missing labels become ordinal placeholders.
func Normalize(records []map[string]interface{}, acc Accessors) models.Series {
	if len(records) == 0 {
		return models.EmptySeries
	}
	acc = acc.withDefaults()

	series := make(models.Series, 0, len(records))
	for i, rec := range records {
		p := models.DataPoint{
			Label: labelOf(rec[acc.LabelKey]),
			Value: ToNumber(rec[acc.ValueKey]),
		}
		if p.Label == "" {
			p.Label = fmt.Sprintf(acc.DefaultLabel, i+1)
		}
		if acc.MinKey != "" {
			if v, ok := rec[acc.MinKey]; ok && v != nil {
				p.Min = models.Float(ToNumber(v))
			}
		}
		if acc.MaxKey != "" {
			if v, ok := rec[acc.MaxKey]; ok && v != nil {
				p.Max = models.Float(ToNumber(v))
			}
		}
		for k, v := range rec {
			if k == acc.ValueKey || k == acc.LabelKey || k == acc.MinKey || k == acc.MaxKey {
				continue
			}
			if p.Extra == nil {
				p.Extra = make(map[string]interface{})
			}
			p.Extra[k] = v
		}
		series = append(series, p)
	}
	return series
}

// Sanitize returns a copy of series with every NaN or infinite value,
// minimum and maximum coerced to 0. The input is not modified.
func Sanitize(series models.Series) models.Series {
	if series.IsEmpty() {
		return models.EmptySeries
	}
	out := make(models.Series, len(series))
	for i, p := range series {
		p.Value = finite(p.Value)
		if p.Min != nil {
			p.Min = models.Float(finite(*p.Min))
		}
		if p.Max != nil {
			p.Max = models.Float(finite(*p.Max))
		}
		out[i] = p
	}
	return out
}

// FromValues builds a Series from plain values. Labels are optional and
// matched by position; missing ones get ordinal placeholders.
func FromValues(values []float64, labels ...string) models.Series {
	if len(values) == 0 {
		return models.EmptySeries
	}
	series := make(models.Series, len(values))
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if label == "" {
			label = fmt.Sprintf("Item %d", i+1)
		}
		series[i] = models.DataPoint{Label: label, Value: finite(v)}
	}
	return series
}

// ToNumber coerces v into a finite float64. Anything that cannot be
// interpreted as a number yields 0.
func ToNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		return parseNumber(n)
	case *float64:
		if n == nil {
			return 0
		}
		return finite(*n)
	}
	return 0
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func labelOf(v interface{}) string {
	switch l := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(l)
	case float64:
		return strconv.FormatFloat(l, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(l, 10)
	case int:
		return strconv.Itoa(l)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
