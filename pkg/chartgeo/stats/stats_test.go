package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

func TestGradeDistribution(t *testing.T) {
	grades := []string{"AA", "AA", "BB", "FF", "FF"}

	dist := Distribution(grades)
	want := models.Distribution{
		{Label: "AA", Count: 2, Sum: 2},
		{Label: "BB", Count: 1, Sum: 1},
		{Label: "FF", Count: 2, Sum: 2},
	}
	if diff := cmp.Diff(want, dist); diff != "" {
		t.Errorf("Distribution mismatch (-want +got):\n%s", diff)
	}
	if dist.Count("CC") != 0 || dist.Total() != 5 {
		t.Errorf("Unexpected Count/Total: %d/%d", dist.Count("CC"), dist.Total())
	}

	if rate := PassRate(grades, "FF"); rate != 60 {
		t.Errorf("PassRate = %d, expected 60", rate)
	}
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		in       Attendance
		expected int
	}{
		{Attendance{Present: 8, Late: 1, Excused: 0, Absent: 1, TotalSessions: 10}, 90},
		{Attendance{Present: 2, Absent: 1}, 67},
		{Attendance{}, 0},
	}

	for _, tt := range tests {
		if got := AttendanceRate(tt.in); got != tt.expected {
			t.Errorf("AttendanceRate(%+v) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		matched, total float64
		expected       int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{5, 0, 0},
		{5, -1, 0},
		{math.NaN(), 4, 0},
		{4, math.NaN(), 0},
		{4, math.Inf(1), 0},
		{4, 4, 100},
	}

	for _, tt := range tests {
		if got := Rate(tt.matched, tt.total); got != tt.expected {
			t.Errorf("Rate(%v, %v) = %d, expected %d", tt.matched, tt.total, got, tt.expected)
		}
	}
}

func TestSummarize(t *testing.T) {
	series := models.Series{{Label: "a", Value: 4}, {Label: "b", Value: -2}, {Label: "c", Value: 7}}

	got := Summarize(series)
	want := models.Summary{Count: 3, Total: 9, Mean: 3, Min: -2, Max: 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}

	empty := Summarize(models.EmptySeries)
	if !empty.Empty || empty.Mean != 0 || empty.Count != 0 {
		t.Errorf("Expected empty sentinel summary, got %+v", empty)
	}
}

func TestSummarizeOverflow(t *testing.T) {
	tests := []struct {
		series models.Series
		total  float64
		mean   float64
	}{
		{models.Series{{Value: 1e308}, {Value: 1e308}}, math.MaxFloat64, 1e308},
		{models.Series{{Value: -1e308}, {Value: -1e308}}, -math.MaxFloat64, -1e308},
		{models.Series{{Value: 1e308}, {Value: -1e308}}, 0, 0},
	}

	for _, tt := range tests {
		got := Summarize(tt.series)
		if got.Total != tt.total || got.Mean != tt.mean {
			t.Errorf("Summarize(%v) total, mean = %v, %v, expected %v, %v",
				tt.series.Values(), got.Total, got.Mean, tt.total, tt.mean)
		}
	}

	if trend := Trend([]float64{1e308, 1e308, 1e308, 1e308}, GradeTrend); trend != models.TrendStable {
		t.Errorf("Trend of constant large values = %s, expected stable", trend)
	}
}

func TestDistributionOf(t *testing.T) {
	series := models.Series{{Label: "late", Value: 1}, {Label: "present", Value: 8}, {Label: "late", Value: 2}}

	dist := DistributionOf(series)
	if len(dist) != 2 || dist[0].Label != "late" || dist[0].Sum != 3 || dist[0].Count != 2 {
		t.Errorf("Unexpected distribution %+v", dist)
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		opts     TrendOptions
		expected models.Trend
	}{
		{"gpa up", []float64{3.1, 3.3, 3.2, 3.5, 3.7, 3.6}, GradeTrend, models.TrendUp},
		{"gpa down", []float64{3.6, 3.6, 3.6, 3.2, 3.2, 3.2}, GradeTrend, models.TrendDown},
		{"gpa within tolerance", []float64{3.2, 3.2, 3.25, 3.25}, TrendOptions{Window: 2, Tolerance: Tolerance{Mode: ToleranceAbsolute, Amount: 0.1}}, models.TrendStable},
		{"attendance band", []float64{90, 92, 94}, TrendOptions{Window: 1, Tolerance: Tolerance{Mode: ToleranceAbsolute, Amount: 5}}, models.TrendStable},
		{"too few points", []float64{1, 100}, GradeTrend, models.TrendStable},
		{"no older window", []float64{1, 100, 50}, GradeTrend, models.TrendStable},
		{"sensor relative up", []float64{100, 100, 110, 110}, SensorTrend, models.TrendUp},
		{"sensor relative stable", []float64{100, 100, 104, 104}, SensorTrend, models.TrendStable},
		{"sensor relative down", []float64{100, 100, 90, 90}, SensorTrend, models.TrendDown},
		{"empty", nil, SensorTrend, models.TrendStable},
	}

	for _, tt := range tests {
		if got := Trend(tt.values, tt.opts); got != tt.expected {
			t.Errorf("%s: Trend(%v) = %s, expected %s", tt.name, tt.values, got, tt.expected)
		}
	}
}

func TestClassifyMeans(t *testing.T) {
	if got := Classify(3.6, 3.2, Tolerance{Mode: ToleranceAbsolute, Amount: 0.1}); got != models.TrendUp {
		t.Errorf("Classify(3.6, 3.2) = %s, expected up", got)
	}
	// A negative older mean flips the relative band; it must stay ordered.
	if got := Classify(-10, -10, Tolerance{Mode: ToleranceRelative, Amount: 0.05}); got != models.TrendStable {
		t.Errorf("Classify(-10, -10) = %s, expected stable", got)
	}
}

func TestWindows(t *testing.T) {
	recent, older, ok := Windows([]float64{1, 2, 3, 4}, 2)
	if !ok || recent != 3.5 || older != 1.5 {
		t.Errorf("Windows = (%v, %v, %v), expected (3.5, 1.5, true)", recent, older, ok)
	}
	if _, _, ok := Windows([]float64{1, 2}, 0); ok {
		t.Error("Expected default window of 3 to reject two values")
	}
}
