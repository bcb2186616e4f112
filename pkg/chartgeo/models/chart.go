package models

// Viewport is the local coordinate space of a chart.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GaugeReading is the derived state of a gauge.
type GaugeReading struct {
	// Value is the gauge value.
	Value float64 `json:"value"`
	// Fraction is the value's position within the domain, 0-1.
	Fraction float64 `json:"fraction"`
	// Angle is the swept angle from the gauge start, in degrees.
	Angle float64 `json:"angle"`
	// AbsoluteAngle is the needle angle in the polar frame, in degrees.
	AbsoluteAngle float64 `json:"absolute_angle"`
	// NeedleRotation is the rotation applied to an upright needle, in degrees.
	NeedleRotation float64 `json:"needle_rotation"`
	// Tip is the needle tip.
	Tip Point `json:"tip"`
}

// Chart is the full output of one chart computation: statistics plus geometry.
type Chart struct {
	// Family is the chart family (donut, gauge, line, ...).
	Family string `json:"family"`
	// ID is the deterministic instance identifier.
	ID string `json:"id"`
	// Title is the optional chart title.
	Title string `json:"title,omitempty"`
	// Empty marks the sentinel output of an empty series.
	Empty bool `json:"empty"`
	// Viewport is the local coordinate space.
	Viewport Viewport `json:"viewport"`
	// Summary holds aggregate statistics.
	Summary Summary `json:"summary"`
	// Domain is the value domain (cartesian and gauge families).
	Domain *ScaleDomain `json:"domain,omitempty"`
	// Segments are the derived slices (donut and progress families).
	Segments []Segment `json:"segments,omitempty"`
	// Ticks are evenly spaced axis values across the domain (cartesian families).
	Ticks []float64 `json:"ticks,omitempty"`
	// Points are the mapped coordinates (cartesian families).
	Points []Point `json:"points,omitempty"`
	// Gauge is the gauge reading (gauge and progress families).
	Gauge *GaugeReading `json:"gauge,omitempty"`
	// Classification is the severity of the headline value, when thresholds apply.
	Classification *Classification `json:"classification,omitempty"`
	// Label is the formatted headline value.
	Label string `json:"label,omitempty"`
	// Paths are the renderable paths in paint order.
	Paths []Path `json:"paths"`
}
