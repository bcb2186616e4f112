// Package stats computes totals, rates, distributions and trends over series.
package stats

import (
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// Summarize computes count, total, mean, min and max. An empty series
// yields the Empty sentinel with all numbers zero. A total that overflows
// is clamped to the largest finite float; the mean stays exact.
func Summarize(series models.Series) models.Summary {
	if series.IsEmpty() {
		return models.Summary{Empty: true}
	}

	s := models.Summary{
		Count: len(series),
		Min:   series[0].Value,
		Max:   series[0].Value,
	}
	for _, p := range series {
		s.Total += p.Value
		s.Min = math.Min(s.Min, p.Value)
		s.Max = math.Max(s.Max, p.Value)
	}
	s.Mean = mean(series.Values())
	if math.IsInf(s.Total, 0) || math.IsNaN(s.Total) {
		s.Total = clampSum(series.Values())
	}
	return s
}

// clampSum returns the sum of values clamped into the finite range.
func clampSum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
		switch {
		case sum > math.MaxFloat64:
			sum = math.MaxFloat64
		case sum < -math.MaxFloat64:
			sum = -math.MaxFloat64
		}
	}
	return sum
}

// Distribution counts labels in first-appearance order.
func Distribution(labels []string) models.Distribution {
	var dist models.Distribution
	index := make(map[string]int, len(labels))
	for _, label := range labels {
		i, ok := index[label]
		if !ok {
			i = len(dist)
			index[label] = i
			dist = append(dist, models.CategoryCount{Label: label})
		}
		dist[i].Count++
		dist[i].Sum++
	}
	return dist
}

// DistributionOf groups a series by label; Count is the number of points
// and Sum the total of their values.
func DistributionOf(series models.Series) models.Distribution {
	var dist models.Distribution
	index := make(map[string]int, len(series))
	for _, p := range series {
		i, ok := index[p.Label]
		if !ok {
			i = len(dist)
			index[p.Label] = i
			dist = append(dist, models.CategoryCount{Label: p.Label})
		}
		dist[i].Count++
		dist[i].Sum += p.Value
	}
	return dist
}

// Rate returns round(matched/total*100), or 0 when total is not a positive
// finite number.
func Rate(matched, total float64) int {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) || math.IsNaN(matched) || math.IsInf(matched, 0) {
		return 0
	}
	return int(math.Round(matched / total * 100))
}

// PassRate returns the share of labels that are not failing, as a Rate.
func PassRate(labels []string, failing ...string) int {
	if len(labels) == 0 {
		return 0
	}
	failed := make(map[string]bool, len(failing))
	for _, f := range failing {
		failed[f] = true
	}
	passed := 0
	for _, l := range labels {
		if !failed[l] {
			passed++
		}
	}
	return Rate(float64(passed), float64(len(labels)))
}

// Attendance holds session counters for one student or course.
type Attendance struct {
	Present       int `json:"present" yaml:"present"`
	Late          int `json:"late" yaml:"late"`
	Excused       int `json:"excused" yaml:"excused"`
	Absent        int `json:"absent" yaml:"absent"`
	TotalSessions int `json:"total_sessions" yaml:"total_sessions"`
}

// AttendanceRate counts present, late and excused sessions as attended.
// When TotalSessions is zero the sum of the counters is used instead.
func AttendanceRate(a Attendance) int {
	attended := a.Present + a.Late + a.Excused
	total := a.TotalSessions
	if total == 0 {
		total = attended + a.Absent
	}
	return Rate(float64(attended), float64(total))
}
