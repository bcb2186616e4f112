package geom

import (
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// GridSize is the extent of the percentage grid used by cartesian charts.
const GridSize = 100.0

// EvenX places point i of n evenly on [0, GridSize]. A single point sits at 0.
func EvenX(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1) * GridSize
}

// Cartesian maps series values onto the percentage grid with the vertical
// axis inverted: larger values get smaller y.
type Cartesian struct {
	Domain models.ScaleDomain
}

// Y maps a value to its inverted vertical position.
func (c Cartesian) Y(v float64) float64 {
	return (1 - c.Domain.ToFraction(v)) * GridSize
}

// Place maps every point of series.
func (c Cartesian) Place(series models.Series) []models.Point {
	if series.IsEmpty() {
		return nil
	}
	points := make([]models.Point, len(series))
	for i, p := range series {
		points[i] = models.Point{X: EvenX(i, len(series)), Y: c.Y(p.Value)}
	}
	return points
}

// PlaceMinMax maps the secondary values of series. Points without a
// secondary value fall back to their primary value.
func (c Cartesian) PlaceMinMax(series models.Series) (lows, highs []models.Point) {
	if series.IsEmpty() {
		return nil, nil
	}
	lows = make([]models.Point, len(series))
	highs = make([]models.Point, len(series))
	for i, p := range series {
		x := EvenX(i, len(series))
		lo, hi := p.Value, p.Value
		if p.Min != nil {
			lo = *p.Min
		}
		if p.Max != nil {
			hi = *p.Max
		}
		lows[i] = models.Point{X: x, Y: c.Y(lo)}
		highs[i] = models.Point{X: x, Y: c.Y(hi)}
	}
	return lows, highs
}

// Bars lays out one bar per point in equal slots across the grid. gapRatio
// is the share of each slot left empty, split on both sides. Bars grow
// from zero, clamped into the domain.
func (c Cartesian) Bars(series models.Series, gapRatio float64) []models.Rect {
	if series.IsEmpty() {
		return nil
	}
	gapRatio = clamp01(gapRatio)
	slot := GridSize / float64(len(series))
	width := slot * (1 - gapRatio)

	base := c.Y(0)

	bars := make([]models.Rect, len(series))
	for i, p := range series {
		y := c.Y(p.Value)
		top, height := y, base-y
		if height < 0 {
			top, height = base, -height
		}
		bars[i] = models.Rect{
			X:      slot*float64(i) + (slot-width)/2,
			Y:      top,
			Width:  width,
			Height: height,
		}
	}
	return bars
}
