// Package models defines the data structures shared by the chart geometry engine.
package models

// DataPoint is a single normalized observation.
type DataPoint struct {
	// Label is the category or axis label.
	Label string `json:"label" yaml:"label"`
	// Value is the primary numeric value.
	Value float64 `json:"value" yaml:"value"`
	// Min is the optional lower secondary value (range bands).
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	// Max is the optional upper secondary value (range bands).
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	// Extra holds record fields not consumed by the accessors.
	Extra map[string]interface{} `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Series is an ordered sequence of data points. Order is meaningful.
type Series []DataPoint

// EmptySeries is the sentinel returned for empty input.
var EmptySeries Series

// IsEmpty reports whether the series carries no points.
func (s Series) IsEmpty() bool {
	return len(s) == 0
}

// Values returns the primary values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Labels returns the labels in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

// Total returns the sum of the primary values.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Value
	}
	return total
}

// Float returns a pointer to v, for the optional secondary values.
func Float(v float64) *float64 {
	return &v
}
