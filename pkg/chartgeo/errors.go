package chartgeo

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
)

// ErrUnknownFamily indicates a family name the engine does not implement.
var ErrUnknownFamily = errors.New("unknown chart family")

// ErrNonMonotonicThresholds indicates cutoffs that are not strictly descending.
var ErrNonMonotonicThresholds = classify.ErrNonMonotonic

// ErrEmptyThresholds indicates a thresholds block with no cutoffs.
var ErrEmptyThresholds = classify.ErrEmptyThresholds

// ErrEmptyPalette indicates a palette that resolves to no colors.
var ErrEmptyPalette = classify.ErrEmptyPalette

// ErrInvalidSize indicates a non-positive size or a stroke that does not fit.
var ErrInvalidSize = errors.New("invalid geometry size")

// ErrInvalidDomain indicates an explicit domain whose minimum is not below its maximum.
var ErrInvalidDomain = errors.New("invalid explicit domain")

// ErrInvalidTrend indicates a negative trend window or tolerance.
var ErrInvalidTrend = errors.New("invalid trend options")

// ConfigError represents one invalid configuration field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid chart configuration %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{
		Field: field,
		Err:   err,
	}
}

// ErrUnsupportedChart indicates an Excel chart type with no matching family.
var ErrUnsupportedChart = errors.New("unsupported excel chart type")

// ChartError represents an error while rendering one chart of a workbook.
type ChartError struct {
	Sheet string
	Chart string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %q in sheet %q: %v", e.Chart, e.Sheet, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(sheet, chart string, err error) *ChartError {
	return &ChartError{
		Sheet: sheet,
		Chart: chart,
		Err:   err,
	}
}
