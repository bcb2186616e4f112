package chartgeo

import (
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/geom"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/path"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/scale"
)

// TrackColor is the color of the background track of progress and gauge rings.
const TrackColor = "#e5e7eb"

// gaugeHeightRatio is the viewport height of a gauge relative to its width.
const gaugeHeightRatio = 0.6

func (e *Engine) ring(sweep geom.Sweep) path.Ring {
	r := path.NewRing(e.cfg.size, e.cfg.strokeWidth, sweep)
	r.GapDeg = e.cfg.segmentGap
	return r
}

func (e *Engine) donut(chart *models.Chart, series models.Series) {
	chart.Viewport = models.Viewport{Width: e.cfg.size, Height: e.cfg.size}
	if chart.Empty {
		chart.Label = e.cfg.formatter(nil)
		return
	}

	sweep := geom.DonutSweep
	ring := e.ring(sweep)
	chart.Segments = geom.Segments(series, sweep, e.cfg.colors)
	for _, seg := range chart.Segments {
		d := ring.Arc(seg.StartAngle, seg.EndAngle)
		if d == "" {
			continue
		}
		chart.Paths = append(chart.Paths, models.Path{
			Kind:        models.PathSegment,
			Label:       seg.Label,
			D:           d,
			Color:       seg.Color,
			StrokeWidth: e.cfg.strokeWidth,
		})
	}

	chart.Label = e.cfg.formatter(chart.Summary.Total)
	chart.Classification = e.classification(chart.Summary.Total)
}

// progress fills a full ring up to the share of the last value within the
// domain. Thresholds apply to that share as a percentage.
func (e *Engine) progress(chart *models.Chart, series models.Series) {
	chart.Viewport = models.Viewport{Width: e.cfg.size, Height: e.cfg.size}
	if chart.Empty {
		chart.Label = e.cfg.formatter(nil)
		return
	}

	sweep := geom.DonutSweep
	domain := scale.NewDomain(series, scale.Options{Min: e.cfg.minValue, Max: e.cfg.maxValue})
	chart.Domain = &domain

	value := headline(series)
	fraction := domain.ToFraction(value)
	percent := fraction * 100
	chart.Gauge = e.reading(value, fraction, sweep)
	chart.Classification = e.classification(percent)

	color := classify.ColorAt(e.cfg.colors, 0)
	if chart.Classification != nil {
		color = chart.Classification.Color
	}
	chart.Segments = []models.Segment{{
		Label:         series[len(series)-1].Label,
		Value:         value,
		Percentage:    percent,
		StartFraction: 0,
		EndFraction:   fraction,
		StartAngle:    sweep.Angle(0),
		EndAngle:      sweep.Angle(fraction),
		Color:         color,
	}}

	ring := e.ring(sweep)
	ring.GapDeg = 0
	chart.Paths = append(chart.Paths, models.Path{
		Kind:        models.PathTrack,
		D:           ring.Track(sweep),
		Color:       TrackColor,
		StrokeWidth: e.cfg.strokeWidth,
	})
	if d := ring.Arc(sweep.Angle(0), sweep.Angle(fraction)); d != "" {
		chart.Paths = append(chart.Paths, models.Path{
			Kind:        models.PathValue,
			Label:       chart.Segments[0].Label,
			D:           d,
			Color:       color,
			StrokeWidth: e.cfg.strokeWidth,
		})
	}
	chart.Label = e.cfg.formatter(percent)
}

// gauge sweeps a half ring up to the last value, with a needle at its angle.
// Thresholds apply to the raw value.
func (e *Engine) gauge(chart *models.Chart, series models.Series) {
	chart.Viewport = models.Viewport{Width: e.cfg.size, Height: e.cfg.size * gaugeHeightRatio}
	if chart.Empty {
		chart.Label = e.cfg.formatter(nil)
		return
	}

	sweep := geom.GaugeSweep
	domain := scale.NewDomain(series, scale.Options{Min: e.cfg.minValue, Max: e.cfg.maxValue})
	chart.Domain = &domain

	value := headline(series)
	fraction := domain.ToFraction(value)
	chart.Gauge = e.reading(value, fraction, sweep)
	chart.Classification = e.classification(value)

	color := classify.ColorAt(e.cfg.colors, 0)
	if chart.Classification != nil {
		color = chart.Classification.Color
	}

	ring := e.ring(sweep)
	ring.GapDeg = 0
	chart.Paths = append(chart.Paths, models.Path{
		Kind:        models.PathTrack,
		D:           ring.Track(sweep),
		Color:       TrackColor,
		StrokeWidth: e.cfg.strokeWidth,
	})
	if d := ring.Arc(sweep.Angle(0), chart.Gauge.AbsoluteAngle); d != "" {
		chart.Paths = append(chart.Paths, models.Path{
			Kind:        models.PathValue,
			D:           d,
			Color:       color,
			StrokeWidth: e.cfg.strokeWidth,
		})
	}
	chart.Paths = append(chart.Paths, models.Path{
		Kind:        models.PathNeedle,
		D:           ring.Needle(chart.Gauge.AbsoluteAngle, ring.Radius),
		Color:       color,
		StrokeWidth: 2,
	})
	chart.Label = e.cfg.formatter(value)
}

func (e *Engine) reading(value, fraction float64, sweep geom.Sweep) *models.GaugeReading {
	ring := e.ring(sweep)
	angle := sweep.Offset(fraction)
	abs := sweep.Angle(fraction)
	return &models.GaugeReading{
		Value:          value,
		Fraction:       fraction,
		Angle:          angle,
		AbsoluteAngle:  abs,
		NeedleRotation: angle + e.cfg.needleOffset,
		Tip:            geom.PolarToCartesian(ring.CX, ring.CY, ring.Radius, abs),
	}
}
