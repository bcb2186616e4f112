package stats

import (
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// ToleranceMode selects how the trend tolerance is applied.
type ToleranceMode string

const (
	// ToleranceAbsolute compares against olderMean +/- Amount.
	ToleranceAbsolute ToleranceMode = "absolute"
	// ToleranceRelative compares against olderMean * (1 +/- Amount).
	ToleranceRelative ToleranceMode = "relative"
)

// DefaultTrendWindow is the recent-window size used when none is given.
const DefaultTrendWindow = 3

// Tolerance is the dead band around the older mean.
type Tolerance struct {
	Mode   ToleranceMode `json:"mode" yaml:"mode"`
	Amount float64       `json:"amount" yaml:"amount"`
}

// TrendOptions configures trend classification for one chart family.
type TrendOptions struct {
	// Window is the number of most recent points in the recent window.
	Window int `json:"window" yaml:"window"`
	// Tolerance is the dead band inside which the trend is stable.
	Tolerance Tolerance `json:"tolerance" yaml:"tolerance"`
}

// Trend presets for the chart families that display a trend.
var (
	// GradeTrend suits grade point averages.
	GradeTrend = TrendOptions{Window: 3, Tolerance: Tolerance{Mode: ToleranceAbsolute, Amount: 0.1}}
	// AttendanceTrend suits percentage rates.
	AttendanceTrend = TrendOptions{Window: 3, Tolerance: Tolerance{Mode: ToleranceAbsolute, Amount: 5}}
	// SensorTrend suits raw sensor readings.
	SensorTrend = TrendOptions{Window: 2, Tolerance: Tolerance{Mode: ToleranceRelative, Amount: 0.05}}
)

// Windows splits values into the recent window (last k) and the older
// window (everything before it, or the recent window when nothing precedes
// it) and returns both means. ok is false when fewer than k values exist.
func Windows(values []float64, k int) (recentMean, olderMean float64, ok bool) {
	if k <= 0 {
		k = DefaultTrendWindow
	}
	if len(values) < k {
		return 0, 0, false
	}
	recent := values[len(values)-k:]
	older := values[:len(values)-k]
	if len(older) == 0 {
		older = recent
	}
	return mean(recent), mean(older), true
}

// Trend classifies the direction of values.
func Trend(values []float64, opts TrendOptions) models.Trend {
	recentMean, olderMean, ok := Windows(values, opts.Window)
	if !ok {
		return models.TrendStable
	}
	return Classify(recentMean, olderMean, opts.Tolerance)
}

// Classify compares two means under tol.
func Classify(recentMean, olderMean float64, tol Tolerance) models.Trend {
	upper, lower := olderMean+tol.Amount, olderMean-tol.Amount
	if tol.Mode == ToleranceRelative {
		upper, lower = olderMean*(1+tol.Amount), olderMean*(1-tol.Amount)
		if lower > upper {
			upper, lower = lower, upper
		}
	}
	switch {
	case recentMean > upper:
		return models.TrendUp
	case recentMean < lower:
		return models.TrendDown
	}
	return models.TrendStable
}

// mean averages values. When the plain sum overflows it averages the
// pre-divided values instead.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	if !math.IsInf(sum, 0) {
		return sum / n
	}
	sum = 0
	for _, v := range values {
		sum += v / n
	}
	return sum
}
