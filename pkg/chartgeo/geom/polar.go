// Package geom maps fractions and values to angles and coordinates.
package geom

import (
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

const (
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// Sweep is the angular configuration of a radial chart. Angles are in
// degrees in screen coordinates (y grows downward), so a clockwise sweep
// increases the angle.
type Sweep struct {
	// StartDeg is the angle of fraction 0.
	StartDeg float64 `json:"start_deg" yaml:"start_deg"`
	// TotalDeg is the angular span of fraction 1.
	TotalDeg float64 `json:"total_deg" yaml:"total_deg"`
	// Clockwise is the direction of increasing fractions.
	Clockwise bool `json:"clockwise" yaml:"clockwise"`
}

var (
	// DonutSweep is a full circle starting at twelve o'clock.
	DonutSweep = Sweep{StartDeg: -90, TotalDeg: 360, Clockwise: true}
	// GaugeSweep is a half circle from nine o'clock over the top to three o'clock.
	GaugeSweep = Sweep{StartDeg: 180, TotalDeg: 180, Clockwise: true}
)

// Offset returns the swept angle for fraction f, clamped to [0,1].
func (s Sweep) Offset(f float64) float64 {
	return clamp01(f) * s.TotalDeg
}

// Angle returns the absolute angle for fraction f.
func (s Sweep) Angle(f float64) float64 {
	if s.Clockwise {
		return s.StartDeg + s.Offset(f)
	}
	return s.StartDeg - s.Offset(f)
}

// PolarToCartesian converts a polar coordinate around (cx, cy) to a point.
func PolarToCartesian(cx, cy, radius, angleDeg float64) models.Point {
	rad := angleDeg * deg2rad
	return models.Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
