// Package scale computes padded value domains for series.
package scale

import (
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

const (
	// DefaultPadRatio is the share of the raw range added on each side.
	DefaultPadRatio = 0.1
	// DefaultFallbackRange replaces a zero range.
	DefaultFallbackRange = 1.0
)

// Options configures domain computation.
type Options struct {
	// Min overrides the lower bound of the domain.
	Min *float64
	// Max overrides the upper bound of the domain.
	Max *float64
	// PadRatio is the padding per side as a share of the raw range.
	// Zero means DefaultPadRatio; a negative value disables padding.
	PadRatio float64
	// FallbackRange substitutes a degenerate range. Zero means DefaultFallbackRange.
	FallbackRange float64
}

func (o Options) padRatio() float64 {
	switch {
	case o.PadRatio < 0:
		return 0
	case o.PadRatio == 0:
		return DefaultPadRatio
	}
	return o.PadRatio
}

func (o Options) fallback() float64 {
	if o.FallbackRange <= 0 || math.IsNaN(o.FallbackRange) || math.IsInf(o.FallbackRange, 0) {
		return DefaultFallbackRange
	}
	return o.FallbackRange
}

// Bounds returns the raw min and max over values and secondary values.
// ok is false for an empty series.
func Bounds(series models.Series) (lo, hi float64, ok bool) {
	if series.IsEmpty() {
		return 0, 0, false
	}
	lo, hi = series[0].Value, series[0].Value
	for _, p := range series {
		lo, hi = math.Min(lo, p.Value), math.Max(hi, p.Value)
		if p.Min != nil {
			lo, hi = math.Min(lo, *p.Min), math.Max(hi, *p.Min)
		}
		if p.Max != nil {
			lo, hi = math.Min(lo, *p.Max), math.Max(hi, *p.Max)
		}
	}
	return lo, hi, true
}

// maxBound limits domain bounds so that PaddedMax - PaddedMin stays finite.
const maxBound = math.MaxFloat64 / 4

// NewDomain computes the padded domain of series. The result always has
// PaddedMax > PaddedMin and a finite Range.
func NewDomain(series models.Series, opts Options) models.ScaleDomain {
	fb := opts.fallback()
	rawLo, rawHi, ok := Bounds(series)
	lo, hi := clampBound(rawLo), clampBound(rawHi)

	var d models.ScaleDomain
	switch {
	case !ok:
		d = models.ScaleDomain{PaddedMin: 0, PaddedMax: fb, Empty: true, Fallback: true}
	case hi-lo == 0 || len(series) == 1:
		center := lo/2 + hi/2
		// Far from zero a fixed half-width vanishes below float resolution.
		half := math.Max(fb/2, math.Abs(center)*1e-9)
		d = models.ScaleDomain{RawMin: rawLo, RawMax: rawHi, PaddedMin: center - half, PaddedMax: center + half, Fallback: true}
	default:
		pad := (hi - lo) * opts.padRatio()
		d = models.ScaleDomain{RawMin: rawLo, RawMax: rawHi, PaddedMin: lo - pad, PaddedMax: hi + pad}
		if !isFinite(d.PaddedMax - d.PaddedMin) {
			d.PaddedMin, d.PaddedMax = lo, hi
		}
	}

	if opts.Min != nil || opts.Max != nil {
		d = override(d, opts, fb)
	}
	d.Range = d.PaddedMax - d.PaddedMin
	return d
}

// override applies an explicit domain. Explicit bounds are used verbatim;
// an inverted or zero-width result falls back to min + fallback.
func override(d models.ScaleDomain, opts Options, fb float64) models.ScaleDomain {
	if opts.Min != nil && isFinite(*opts.Min) {
		d.PaddedMin = clampBound(*opts.Min)
	}
	if opts.Max != nil && isFinite(*opts.Max) {
		d.PaddedMax = clampBound(*opts.Max)
	}
	d.Fallback = false
	if d.PaddedMax <= d.PaddedMin {
		d.PaddedMax = d.PaddedMin + math.Max(fb, math.Abs(d.PaddedMin)*1e-9)
		d.Fallback = true
	}
	return d
}

func clampBound(v float64) float64 {
	return math.Max(-maxBound, math.Min(maxBound, v))
}

// Ticks returns n evenly spaced values from PaddedMin to PaddedMax.
func Ticks(d models.ScaleDomain, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{d.PaddedMin}
	}
	ticks := make([]float64, n)
	step := d.Range / float64(n-1)
	for i := range ticks {
		ticks[i] = d.PaddedMin + step*float64(i)
	}
	ticks[n-1] = d.PaddedMax
	return ticks
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
