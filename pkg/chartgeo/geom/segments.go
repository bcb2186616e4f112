package geom

import (
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// Segments splits the sweep between the points of series in proportion to
// their values. Negative values count as zero. When the total is positive
// the percentages sum to 100 and the last segment ends exactly at the end
// of the sweep. Colors are assigned round-robin from colors.
func Segments(series models.Series, sweep Sweep, colors []string) []models.Segment {
	if series.IsEmpty() {
		return nil
	}

	// When the plain total overflows, shares are computed on values
	// scaled by the largest one.
	unit := 1.0
	total := positiveSum(series, unit)
	if math.IsInf(total, 0) {
		for _, p := range series {
			unit = math.Max(unit, p.Value)
		}
		total = positiveSum(series, unit)
	}

	segments := make([]models.Segment, len(series))
	var cumulative float64
	for i, p := range series {
		v := p.Value
		if v < 0 {
			v = 0
		}
		seg := models.Segment{Label: p.Label, Value: v, StartFraction: cumulative}
		if total > 0 {
			share := v / unit / total
			seg.Percentage = share * 100
			cumulative += share
		}
		if total > 0 && i == len(series)-1 {
			cumulative = 1
		}
		seg.EndFraction = cumulative
		seg.StartAngle = sweep.Angle(seg.StartFraction)
		seg.EndAngle = sweep.Angle(seg.EndFraction)
		if len(colors) > 0 {
			seg.Color = colors[i%len(colors)]
		}
		segments[i] = seg
	}
	return segments
}

func positiveSum(series models.Series, unit float64) float64 {
	var total float64
	for _, p := range series {
		if p.Value > 0 {
			total += p.Value / unit
		}
	}
	return total
}
