package models

// Segment is one category's share of a whole, in angular and linear terms.
type Segment struct {
	// Label is the category label.
	Label string `json:"label"`
	// Value is the category value (negative input is clamped to 0).
	Value float64 `json:"value"`
	// Percentage is the share of the total, 0-100.
	Percentage float64 `json:"percentage"`
	// StartFraction is the cumulative share before this segment, 0-1.
	StartFraction float64 `json:"start_fraction"`
	// EndFraction is the cumulative share including this segment, 0-1.
	EndFraction float64 `json:"end_fraction"`
	// StartAngle is the segment start in degrees.
	StartAngle float64 `json:"start_angle"`
	// EndAngle is the segment end in degrees (exclusive).
	EndAngle float64 `json:"end_angle"`
	// Color is the resolved palette color.
	Color string `json:"color"`
}
