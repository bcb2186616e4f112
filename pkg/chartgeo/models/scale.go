package models

// ScaleDomain is a padded value domain for one chart.
type ScaleDomain struct {
	// RawMin is the smallest observed value.
	RawMin float64 `json:"raw_min"`
	// RawMax is the largest observed value.
	RawMax float64 `json:"raw_max"`
	// PaddedMin is the lower bound used for mapping.
	PaddedMin float64 `json:"padded_min"`
	// PaddedMax is the upper bound used for mapping. Always > PaddedMin.
	PaddedMax float64 `json:"padded_max"`
	// Range is PaddedMax - PaddedMin. Never 0.
	Range float64 `json:"range"`
	// Fallback reports whether a fallback range was substituted.
	Fallback bool `json:"fallback,omitempty"`
	// Empty marks the sentinel domain of an empty series.
	Empty bool `json:"empty,omitempty"`
}

// ToFraction maps v into [0,1] within the padded domain.
func (d ScaleDomain) ToFraction(v float64) float64 {
	if d.Range <= 0 {
		return 0
	}
	f := (v - d.PaddedMin) / d.Range
	switch {
	case f != f, f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// FromFraction is the inverse of ToFraction.
func (d ScaleDomain) FromFraction(f float64) float64 {
	return d.PaddedMin + f*d.Range
}
