// Package classify maps values to severity categories and display colors.
package classify

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// ErrNonMonotonic indicates thresholds that are not strictly descending.
var ErrNonMonotonic = errors.New("threshold cutoffs are not strictly descending")

// ErrEmptyThresholds indicates a threshold set with no levels.
var ErrEmptyThresholds = errors.New("threshold set has no levels")

// Classify evaluates set top-down: the first cutoff met or exceeded wins.
// When none is met, or value is NaN, the set's default applies.
func Classify(value float64, set models.ThresholdSet) models.Category {
	if math.IsNaN(value) {
		return set.Default
	}
	for _, level := range set.Levels {
		if value >= level.Cutoff {
			return level.Category
		}
	}
	return set.Default
}

// Rank returns the index of the level that value selects, or len(Levels)
// for the default. Lower ranks sit higher in the set.
func Rank(value float64, set models.ThresholdSet) int {
	if math.IsNaN(value) {
		return len(set.Levels)
	}
	for i, level := range set.Levels {
		if value >= level.Cutoff {
			return i
		}
	}
	return len(set.Levels)
}

// Validate reports whether set can be classified unambiguously.
func Validate(set models.ThresholdSet) error {
	if len(set.Levels) == 0 {
		return ErrEmptyThresholds
	}
	for i := 1; i < len(set.Levels); i++ {
		prev, cur := set.Levels[i-1], set.Levels[i]
		if !(cur.Cutoff < prev.Cutoff) {
			return fmt.Errorf("%w: %s=%v follows %s=%v", ErrNonMonotonic, cur.Category, cur.Cutoff, prev.Category, prev.Cutoff)
		}
	}
	for _, level := range set.Levels {
		if math.IsNaN(level.Cutoff) {
			return fmt.Errorf("%w: %s has no cutoff", ErrNonMonotonic, level.Category)
		}
	}
	return nil
}

// HigherIsWorse builds the {warning, danger} set: values at or above danger
// are danger, at or above warning are warning, the rest normal.
func HigherIsWorse(warning, danger float64) models.ThresholdSet {
	return models.ThresholdSet{
		Levels: []models.Threshold{
			{Cutoff: danger, Category: models.CategoryDanger},
			{Cutoff: warning, Category: models.CategoryWarning},
		},
		Default: models.CategoryNormal,
	}
}

// HigherIsBetter builds the {success, warning} set: values at or above
// success are success, at or above warning are warning, the rest danger.
func HigherIsBetter(success, warning float64) models.ThresholdSet {
	return models.ThresholdSet{
		Levels: []models.Threshold{
			{Cutoff: success, Category: models.CategorySuccess},
			{Cutoff: warning, Category: models.CategoryWarning},
		},
		Default: models.CategoryDanger,
	}
}
