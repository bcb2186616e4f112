package models

// PathCommand is a path string in the M/L/Q/A/Z mini-language.
type PathCommand string

// Point is a coordinate in the engine's local coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in local coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PathKind names the role of a path within a chart.
type PathKind string

const (
	PathTrack   PathKind = "track"
	PathSegment PathKind = "segment"
	PathValue   PathKind = "value"
	PathCurve   PathKind = "curve"
	PathArea    PathKind = "area"
	PathBand    PathKind = "band"
	PathBar     PathKind = "bar"
	PathNeedle  PathKind = "needle"
)

// Path is one renderable path of a chart.
type Path struct {
	// Kind is the role of the path.
	Kind PathKind `json:"kind"`
	// Label ties the path to a data point or segment (optional).
	Label string `json:"label,omitempty"`
	// D is the path command string.
	D PathCommand `json:"d"`
	// Color is the stroke or fill color.
	Color string `json:"color,omitempty"`
	// Fill reports whether the path is filled rather than stroked.
	Fill bool `json:"fill,omitempty"`
	// StrokeWidth is the stroke width for stroked paths.
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}
