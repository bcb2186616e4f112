package models

// Summary holds aggregate statistics over a series.
type Summary struct {
	// Count is the number of points.
	Count int `json:"count"`
	// Total is the sum of the primary values.
	Total float64 `json:"total"`
	// Mean is Total / Count.
	Mean float64 `json:"mean"`
	// Min is the smallest primary value.
	Min float64 `json:"min"`
	// Max is the largest primary value.
	Max float64 `json:"max"`
	// Trend is the trend classification, when computed.
	Trend Trend `json:"trend,omitempty"`
	// Empty marks the sentinel summary of an empty series.
	Empty bool `json:"empty,omitempty"`
}

// CategoryCount is one entry of a distribution.
type CategoryCount struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// Distribution is an ordered set of category counts, in first-appearance order.
type Distribution []CategoryCount

// Count returns the count for label, or 0.
func (d Distribution) Count(label string) int {
	for _, c := range d {
		if c.Label == label {
			return c.Count
		}
	}
	return 0
}

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.Count
	}
	return total
}
