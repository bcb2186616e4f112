package path

import (
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/geom"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// DefaultSegmentGapDeg is the angle trimmed from the end of each ring
// segment so adjacent segments stay visibly apart.
const DefaultSegmentGapDeg = 0.5

// Ring is a circular track of a radial chart.
type Ring struct {
	// CX is the center x.
	CX float64
	// CY is the center y.
	CY float64
	// Radius is the stroke centerline radius.
	Radius float64
	// Clockwise is the direction of increasing angles in the active preset.
	Clockwise bool
	// GapDeg is trimmed from each segment end. Zero means no gap.
	GapDeg float64
}

// NewRing returns the ring centered in a size x size viewport whose stroke
// of strokeWidth fits inside the viewport.
func NewRing(size, strokeWidth float64, sweep geom.Sweep) Ring {
	return Ring{
		CX:        size / 2,
		CY:        size / 2,
		Radius:    math.Max((size-strokeWidth)/2, 0),
		Clockwise: sweep.Clockwise,
		GapDeg:    DefaultSegmentGapDeg,
	}
}

// Arc draws the ring segment [startDeg, endDeg) from its end back to its
// start. The end is deflated by the ring gap. It returns "" when the segment
// is no wider than the gap.
func (r Ring) Arc(startDeg, endDeg float64) models.PathCommand {
	span := math.Abs(endDeg-startDeg) - r.GapDeg
	if span <= 0 || r.Radius <= 0 {
		return ""
	}
	if span >= 360 {
		span = 360 - math.Max(r.GapDeg, DefaultSegmentGapDeg)
	}

	dir := 1.0
	if !r.Clockwise {
		dir = -1
	}
	end := startDeg + dir*span

	from := geom.PolarToCartesian(r.CX, r.CY, r.Radius, end)
	to := geom.PolarToCartesian(r.CX, r.CY, r.Radius, startDeg)

	// Drawing end-to-start walks against the preset direction.
	sweepFlag := !r.Clockwise

	var b Builder
	b.MoveTo(from).ArcTo(r.Radius, r.Radius, 0, span > 180, sweepFlag, to)
	return b.Command()
}

// Track draws the full sweep with no gap, for the background of a gauge
// or progress ring.
func (r Ring) Track(sweep geom.Sweep) models.PathCommand {
	track := r
	track.GapDeg = 0
	return track.Arc(sweep.Angle(0), sweep.Angle(1))
}

// Needle draws a line from the ring center to the given angle at length.
func (r Ring) Needle(angleDeg, length float64) models.PathCommand {
	var b Builder
	b.MoveTo(models.Point{X: r.CX, Y: r.CY}).
		LineTo(geom.PolarToCartesian(r.CX, r.CY, length, angleDeg))
	return b.Command()
}
