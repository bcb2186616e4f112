// Package format turns values into display strings.
package format

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// DefaultPlaceholder is shown for missing or non-numeric values.
const DefaultPlaceholder = "-"

// Formatter renders a value for display. It never panics.
type Formatter func(v interface{}) string

// Options configures New.
type Options struct {
	// Decimals fixes the number of decimals. A negative value keeps the
	// shortest exact representation.
	Decimals int `json:"decimals" yaml:"decimals"`
	// Unit is appended after the number, separated by a space.
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
	// Percent appends a percent sign.
	Percent bool `json:"percent,omitempty" yaml:"percent,omitempty"`
	// Placeholder replaces missing values. Defaults to DefaultPlaceholder.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Plain stringifies numbers in their shortest form and passes strings through.
var Plain = New(Options{Decimals: -1})

// New returns a Formatter for opts.
func New(opts Options) Formatter {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return func(v interface{}) string {
		if s, ok := v.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			return placeholder
		}
		f, ok := number(v)
		if !ok {
			return placeholder
		}

		var out string
		if opts.Decimals < 0 {
			out = strconv.FormatFloat(f, 'f', -1, 64)
		} else {
			out = strconv.FormatFloat(f, 'f', opts.Decimals, 64)
		}
		if out == "-0" || strings.Trim(out, "-0.") == "" && strings.HasPrefix(out, "-") {
			out = strings.TrimPrefix(out, "-")
		}
		if opts.Percent {
			out += "%"
		}
		if opts.Unit != "" {
			out += " " + opts.Unit
		}
		return out
	}
}

// Value formats v with the Plain formatter.
func Value(v interface{}) string {
	return Plain(v)
}

// number extracts a finite float from v, dereferencing pointers.
func number(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil && finite(f)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	var f float64
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f = float64(rv.Uint())
	default:
		return 0, false
	}
	return f, finite(f)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
