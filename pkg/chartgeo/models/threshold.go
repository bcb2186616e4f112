package models

// Category is a classification token such as "success" or "danger".
type Category string

const (
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
	CategoryNormal  Category = "normal"
)

// Threshold pairs a cutoff with the category it selects.
type Threshold struct {
	// Cutoff is the minimum value (inclusive) for the category.
	Cutoff float64 `json:"cutoff" yaml:"cutoff"`
	// Category is the category selected when the cutoff is met.
	Category Category `json:"category" yaml:"category"`
}

// ThresholdSet is an ordered, descending list of thresholds.
type ThresholdSet struct {
	// Levels are evaluated top-down.
	Levels []Threshold `json:"levels" yaml:"levels"`
	// Default applies when no cutoff is met.
	Default Category `json:"default" yaml:"default"`
}

// Classification is a category token plus its resolved display color.
type Classification struct {
	Category Category `json:"category"`
	Color    string   `json:"color"`
}
