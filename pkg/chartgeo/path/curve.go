package path

import (
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// Smooth draws a curve through points. Each step is a quadratic curve whose
// control point sits at the horizontal midpoint of the two points, at the
// height of the point being reached.
func Smooth(points []models.Point) models.PathCommand {
	if len(points) == 0 {
		return ""
	}
	var b Builder
	b.MoveTo(points[0])
	smoothTo(&b, points)
	return b.Command()
}

// smoothTo appends the quadratic steps after points[0].
func smoothTo(b *Builder, points []models.Point) {
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		ctrl := models.Point{X: (prev.X + cur.X) / 2, Y: cur.Y}
		b.QuadTo(ctrl, cur)
	}
}

// Line draws straight segments through points.
func Line(points []models.Point) models.PathCommand {
	if len(points) == 0 {
		return ""
	}
	var b Builder
	b.MoveTo(points[0])
	for _, p := range points[1:] {
		b.LineTo(p)
	}
	return b.Command()
}

// Area closes the curve through points down to baseline y. When smooth is
// false the curve is made of straight segments.
func Area(points []models.Point, baseline float64, smooth bool) models.PathCommand {
	if len(points) == 0 {
		return ""
	}
	var b Builder
	b.MoveTo(points[0])
	if smooth {
		smoothTo(&b, points)
	} else {
		for _, p := range points[1:] {
			b.LineTo(p)
		}
	}
	last := points[len(points)-1]
	b.LineTo(models.Point{X: last.X, Y: baseline}).
		LineTo(models.Point{X: points[0].X, Y: baseline}).
		Close()
	return b.Command()
}

// Band builds a closed region tracing highs forward and lows backward.
// Both slices must describe the same x positions; extra points are ignored.
func Band(highs, lows []models.Point, smooth bool) models.PathCommand {
	n := min(len(highs), len(lows))
	if n == 0 {
		return ""
	}
	highs, lows = highs[:n], lows[:n]

	back := make([]models.Point, n)
	for i := range lows {
		back[i] = lows[n-1-i]
	}

	var b Builder
	b.MoveTo(highs[0])
	if smooth {
		smoothTo(&b, highs)
	} else {
		for _, p := range highs[1:] {
			b.LineTo(p)
		}
	}
	b.LineTo(back[0])
	if smooth {
		smoothTo(&b, back)
	} else {
		for _, p := range back[1:] {
			b.LineTo(p)
		}
	}
	b.Close()
	return b.Command()
}

// Rect draws a closed rectangle.
func Rect(r models.Rect) models.PathCommand {
	var b Builder
	b.MoveTo(models.Point{X: r.X, Y: r.Y}).
		LineTo(models.Point{X: r.X + r.Width, Y: r.Y}).
		LineTo(models.Point{X: r.X + r.Width, Y: r.Y + r.Height}).
		LineTo(models.Point{X: r.X, Y: r.Y + r.Height}).
		Close()
	return b.Command()
}
