package scale

import (
	"math"
	"testing"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewDomainPadding(t *testing.T) {
	series := models.Series{{Value: 10}, {Value: 20}, {Value: 15}}

	d := NewDomain(series, Options{})
	if d.RawMin != 10 || d.RawMax != 20 {
		t.Errorf("Raw bounds = [%v,%v], expected [10,20]", d.RawMin, d.RawMax)
	}
	if !approx(d.PaddedMin, 9) || !approx(d.PaddedMax, 21) || !approx(d.Range, 12) {
		t.Errorf("Padded domain = [%v,%v] range %v, expected [9,21] range 12", d.PaddedMin, d.PaddedMax, d.Range)
	}
	if d.Fallback || d.Empty {
		t.Errorf("Unexpected flags %+v", d)
	}
}

func TestNewDomainSecondaryValues(t *testing.T) {
	series := models.Series{
		{Value: 20, Min: models.Float(15), Max: models.Float(25)},
		{Value: 22, Min: models.Float(18), Max: models.Float(35)},
	}

	d := NewDomain(series, Options{PadRatio: -1})
	if d.PaddedMin != 15 || d.PaddedMax != 35 {
		t.Errorf("Domain = [%v,%v], expected [15,35]", d.PaddedMin, d.PaddedMax)
	}
}

func TestNewDomainDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		series models.Series
	}{
		{"constant", models.Series{{Value: 7}, {Value: 7}, {Value: 7}}},
		{"single point", models.Series{{Value: 5}}},
		{"zeros", models.Series{{Value: 0}, {Value: 0}}},
	}

	for _, tt := range tests {
		d := NewDomain(tt.series, Options{})
		if d.Range == 0 || !(d.PaddedMax > d.PaddedMin) {
			t.Errorf("%s: degenerate domain %+v", tt.name, d)
		}
		if !d.Fallback || d.Range != DefaultFallbackRange {
			t.Errorf("%s: expected fallback range %v, got %+v", tt.name, DefaultFallbackRange, d)
		}
		if f := d.ToFraction(tt.series[0].Value); !approx(f, 0.5) {
			t.Errorf("%s: ToFraction = %v, expected 0.5", tt.name, f)
		}
	}
}

func TestNewDomainEmpty(t *testing.T) {
	d := NewDomain(models.EmptySeries, Options{FallbackRange: 10})
	if !d.Empty || d.PaddedMin != 0 || d.PaddedMax != 10 || d.Range != 10 {
		t.Errorf("Unexpected empty domain %+v", d)
	}
	for _, v := range []float64{d.ToFraction(5), d.FromFraction(0.5)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Non-finite value %v from empty domain", v)
		}
	}
}

func TestNewDomainOverride(t *testing.T) {
	series := models.Series{{Value: 95}}

	d := NewDomain(series, Options{Min: models.Float(0), Max: models.Float(100)})
	if d.PaddedMin != 0 || d.PaddedMax != 100 || d.Range != 100 || d.Fallback {
		t.Errorf("Unexpected override domain %+v", d)
	}
	if f := d.ToFraction(95); !approx(f, 0.95) {
		t.Errorf("ToFraction(95) = %v, expected 0.95", f)
	}

	inverted := NewDomain(series, Options{Min: models.Float(10), Max: models.Float(10)})
	if inverted.PaddedMax != 11 || !inverted.Fallback {
		t.Errorf("Expected fallback for zero-width override, got %+v", inverted)
	}
}

func TestToFractionRoundTrip(t *testing.T) {
	d := NewDomain(models.Series{{Value: -5}, {Value: 5}}, Options{})

	tests := []struct {
		value    float64
		expected float64
	}{
		{-6, 0},
		{6, 1},
		{0, 0.5},
		{-100, 0},
		{100, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := d.ToFraction(tt.value); !approx(got, tt.expected) {
			t.Errorf("ToFraction(%v) = %v, expected %v", tt.value, got, tt.expected)
		}
	}
	for _, v := range []float64{-6, -1, 0, 3.3, 6} {
		if got := d.FromFraction(d.ToFraction(v)); !approx(got, v) {
			t.Errorf("FromFraction(ToFraction(%v)) = %v", v, got)
		}
	}
}

func TestTicks(t *testing.T) {
	d := NewDomain(models.Series{{Value: 0}, {Value: 100}}, Options{PadRatio: -1})

	ticks := Ticks(d, 5)
	expected := []float64{0, 25, 50, 75, 100}
	if len(ticks) != len(expected) {
		t.Fatalf("Expected %d ticks, got %d", len(expected), len(ticks))
	}
	for i := range expected {
		if !approx(ticks[i], expected[i]) {
			t.Errorf("ticks[%d] = %v, expected %v", i, ticks[i], expected[i])
		}
	}
	if Ticks(d, 0) != nil {
		t.Error("Expected no ticks for n=0")
	}
}

func TestNewDomainExtremeValues(t *testing.T) {
	tests := []struct {
		name   string
		series models.Series
		opts   Options
	}{
		{"opposite extremes", models.Series{{Value: 1e308}, {Value: -1e308}}, Options{}},
		{"wide padding", models.Series{{Value: 1e308}, {Value: -1e308}}, Options{PadRatio: 5}},
		{"constant extreme", models.Series{{Value: 1e308}, {Value: 1e308}}, Options{}},
		{"single large", models.Series{{Value: 1e20}}, Options{}},
		{"extreme override", models.Series{{Value: 1}}, Options{Min: models.Float(-1e308), Max: models.Float(1e308)}},
	}

	for _, tt := range tests {
		d := NewDomain(tt.series, tt.opts)
		for _, v := range []float64{d.PaddedMin, d.PaddedMax, d.Range} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s: non-finite domain %+v", tt.name, d)
			}
		}
		if !(d.Range > 0) || !(d.PaddedMax > d.PaddedMin) {
			t.Errorf("%s: empty domain %+v", tt.name, d)
		}
		if d.RawMax != tt.series[0].Value && tt.opts.Min == nil {
			t.Errorf("%s: raw max %v, expected %v", tt.name, d.RawMax, tt.series[0].Value)
		}
	}
}
