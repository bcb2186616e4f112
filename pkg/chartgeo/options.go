// Package chartgeo turns datasets into chart statistics and path geometry.
package chartgeo

import (
	"go.uber.org/zap"
)

// Family is a chart family: a thin configuration shell over the engine.
type Family string

const (
	// FamilyDonut splits a full ring between categories.
	FamilyDonut Family = "donut"
	// FamilyProgress fills a full ring up to one ratio.
	FamilyProgress Family = "progress"
	// FamilyGauge sweeps a half ring with a needle and thresholds.
	FamilyGauge Family = "gauge"
	// FamilyLine draws a curve over ordered values.
	FamilyLine Family = "line"
	// FamilyArea fills the region under the curve.
	FamilyArea Family = "area"
	// FamilyRange fills the band between min and max values.
	FamilyRange Family = "range"
	// FamilyBar draws one bar per value.
	FamilyBar Family = "bar"
)

// Families lists every supported family.
func Families() []Family {
	return []Family{FamilyDonut, FamilyProgress, FamilyGauge, FamilyLine, FamilyArea, FamilyRange, FamilyBar}
}

// Radial reports whether the family is drawn on a ring.
func (f Family) Radial() bool {
	switch f {
	case FamilyDonut, FamilyProgress, FamilyGauge:
		return true
	}
	return false
}

// Valid reports whether f is a supported family.
func (f Family) Valid() bool {
	for _, known := range Families() {
		if f == known {
			return true
		}
	}
	return false
}

// settings holds engine-level knobs set through Option.
type settings struct {
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*settings)

// WithLogger sets the logger that receives configuration warnings.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
