package chartgeo

import (
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/geom"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/path"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/scale"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/stats"
)

// DefaultTickCount is the number of axis ticks of cartesian charts.
const DefaultTickCount = 5

func (e *Engine) cartesian(chart *models.Chart, series models.Series) geom.Cartesian {
	chart.Viewport = models.Viewport{Width: geom.GridSize, Height: geom.GridSize}
	domain := scale.NewDomain(series, scale.Options{Min: e.cfg.minValue, Max: e.cfg.maxValue})
	chart.Domain = &domain
	chart.Ticks = scale.Ticks(domain, DefaultTickCount)
	return geom.Cartesian{Domain: domain}
}

// curve draws the line, area and range families.
func (e *Engine) curve(chart *models.Chart, series models.Series) {
	cart := e.cartesian(chart, series)
	chart.Summary.Trend = stats.Trend(series.Values(), e.cfg.trend)
	if chart.Empty {
		chart.Label = e.cfg.formatter(nil)
		return
	}

	value := headline(series)
	chart.Classification = e.classification(value)
	chart.Label = e.cfg.formatter(value)
	chart.Points = cart.Place(series)
	color := classify.ColorAt(e.cfg.colors, 0)

	switch e.cfg.family {
	case FamilyArea:
		chart.Paths = append(chart.Paths, models.Path{
			Kind:  models.PathArea,
			D:     path.Area(chart.Points, e.cfg.baseline, e.cfg.smooth),
			Color: color,
			Fill:  true,
		})
	case FamilyRange:
		lows, highs := cart.PlaceMinMax(series)
		chart.Paths = append(chart.Paths, models.Path{
			Kind:  models.PathBand,
			D:     path.Band(highs, lows, e.cfg.smooth),
			Color: color,
			Fill:  true,
		})
	}

	d := path.Line(chart.Points)
	if e.cfg.smooth {
		d = path.Smooth(chart.Points)
	}
	chart.Paths = append(chart.Paths, models.Path{
		Kind:        models.PathCurve,
		D:           d,
		Color:       color,
		StrokeWidth: e.cfg.strokeWidth,
	})
}

// bars draws one bar per point. With thresholds each bar takes the color of
// its own classification; otherwise colors cycle through the palette.
func (e *Engine) bars(chart *models.Chart, series models.Series) {
	cart := e.cartesian(chart, series)
	if chart.Empty {
		chart.Label = e.cfg.formatter(nil)
		return
	}

	chart.Label = e.cfg.formatter(chart.Summary.Total)
	chart.Classification = e.classification(chart.Summary.Total)

	rects := cart.Bars(series, e.cfg.barGap)
	chart.Points = make([]models.Point, len(rects))
	for i, r := range rects {
		p := series[i]
		chart.Points[i] = models.Point{X: r.X + r.Width/2, Y: cart.Y(p.Value)}

		color := classify.ColorAt(e.cfg.colors, i)
		if c := e.classification(p.Value); c != nil {
			color = c.Color
		}
		chart.Paths = append(chart.Paths, models.Path{
			Kind:  models.PathBar,
			Label: p.Label,
			D:     path.Rect(r),
			Color: color,
			Fill:  true,
		})
	}
}
