package chartgeo

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/dataset"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/format"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/path"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/stats"
	"gopkg.in/yaml.v3"
)

// DefaultNeedleOffsetDeg rotates an upright needle so that it points at
// the start of the gauge sweep when the swept angle is 0.
const DefaultNeedleOffsetDeg = -90.0

// Config is the per-chart configuration surface.
type Config struct {
	// Family selects the chart family.
	Family Family `json:"family" yaml:"family"`
	// ID is a caller-chosen name; instance identifiers derive from it.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Title is carried through to the output.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Accessors name the record fields.
	dataset.Accessors `yaml:",inline"`

	// Size is the viewport size of radial families.
	Size float64 `json:"size,omitempty" yaml:"size,omitempty"`
	// StrokeWidth is the ring or line stroke width.
	StrokeWidth float64 `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	// Colors overrides the palette.
	Colors classify.Palette `json:"colors,omitempty" yaml:"colors,omitempty"`
	// Thresholds configures classification.
	Thresholds *Thresholds `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
	// Format configures the headline label. Nil uses plain formatting.
	Format *format.Options `json:"format,omitempty" yaml:"format,omitempty"`
	// MinValue overrides the domain minimum.
	MinValue *float64 `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	// MaxValue overrides the domain maximum.
	MaxValue *float64 `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	// Trend configures trend classification for cartesian families.
	Trend *stats.TrendOptions `json:"trend,omitempty" yaml:"trend,omitempty"`
	// Smooth selects quadratic smoothing for curves. Defaults to true.
	Smooth *bool `json:"smooth,omitempty" yaml:"smooth,omitempty"`
	// SegmentGap is the angle trimmed from each ring segment, in degrees.
	SegmentGap *float64 `json:"segment_gap,omitempty" yaml:"segment_gap,omitempty"`
	// NeedleOffset is added to the swept angle to rotate an upright needle.
	NeedleOffset *float64 `json:"needle_offset,omitempty" yaml:"needle_offset,omitempty"`
	// Baseline is the y of the area fill baseline on the 0-100 grid.
	Baseline *float64 `json:"baseline,omitempty" yaml:"baseline,omitempty"`
	// BarGap is the share of each bar slot left empty.
	BarGap *float64 `json:"bar_gap,omitempty" yaml:"bar_gap,omitempty"`
}

// Thresholds is the configuration form of a threshold set: either named
// cutoff pairs ({warning, danger} or {success, warning}) or explicit levels.
type Thresholds struct {
	Success *float64 `json:"success,omitempty" yaml:"success,omitempty"`
	Warning *float64 `json:"warning,omitempty" yaml:"warning,omitempty"`
	Danger  *float64 `json:"danger,omitempty" yaml:"danger,omitempty"`
	// Levels lists explicit descending cutoffs; it takes precedence.
	Levels []models.Threshold `json:"levels,omitempty" yaml:"levels,omitempty"`
	// Default is the category when no cutoff is met.
	Default models.Category `json:"default,omitempty" yaml:"default,omitempty"`
	// Colors overrides category display colors.
	Colors map[models.Category]string `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Set converts t into a validated threshold set.
func (t Thresholds) Set() (models.ThresholdSet, error) {
	var set models.ThresholdSet
	switch {
	case len(t.Levels) > 0:
		set = models.ThresholdSet{Levels: t.Levels, Default: models.CategoryNormal}
	case t.Success != nil:
		set = models.ThresholdSet{
			Levels:  []models.Threshold{{Cutoff: *t.Success, Category: models.CategorySuccess}},
			Default: models.CategoryDanger,
		}
		if t.Warning != nil {
			set.Levels = append(set.Levels, models.Threshold{Cutoff: *t.Warning, Category: models.CategoryWarning})
		}
	case t.Danger != nil || t.Warning != nil:
		set.Default = models.CategoryNormal
		if t.Danger != nil {
			set.Levels = append(set.Levels, models.Threshold{Cutoff: *t.Danger, Category: models.CategoryDanger})
		}
		if t.Warning != nil {
			set.Levels = append(set.Levels, models.Threshold{Cutoff: *t.Warning, Category: models.CategoryWarning})
		}
	}
	if t.Default != "" {
		set.Default = t.Default
	}
	if err := classify.Validate(set); err != nil {
		return models.ThresholdSet{}, err
	}
	return set, nil
}

// DefaultConfig returns the defaults of family.
func DefaultConfig(family Family) Config {
	cfg := Config{
		Family:      family,
		Accessors:   dataset.DefaultAccessors(),
		Size:        100,
		StrokeWidth: 10,
		Colors:      classify.Named(classify.DefaultPaletteName),
	}
	switch family {
	case FamilyDonut:
		cfg.StrokeWidth = 12
	case FamilyProgress:
		cfg.MinValue, cfg.MaxValue = models.Float(0), models.Float(100)
		cfg.Thresholds = &Thresholds{Success: models.Float(80), Warning: models.Float(60)}
		cfg.Format = &format.Options{Decimals: 0, Percent: true}
	case FamilyGauge:
		cfg.MinValue, cfg.MaxValue = models.Float(0), models.Float(100)
		cfg.Thresholds = &Thresholds{Warning: models.Float(70), Danger: models.Float(90)}
	case FamilyLine:
		cfg.StrokeWidth = 2
		cfg.Trend = trendPreset(stats.GradeTrend)
	case FamilyArea:
		cfg.StrokeWidth = 2
		cfg.Trend = trendPreset(stats.AttendanceTrend)
	case FamilyRange:
		cfg.StrokeWidth = 2
		cfg.Trend = trendPreset(stats.SensorTrend)
	case FamilyBar:
		cfg.StrokeWidth = 0
	}
	return cfg
}

func trendPreset(t stats.TrendOptions) *stats.TrendOptions {
	return &t
}

// ParseConfig decodes a YAML (or JSON) chart configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse chart config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a chart configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// Validate reports every invalid field of c, joined.
func (c Config) Validate() error {
	var errs []error
	if !c.Family.Valid() {
		errs = append(errs, NewConfigError("family", fmt.Errorf("%w: %q", ErrUnknownFamily, c.Family)))
	}
	if c.Size < 0 || !finite(c.Size) {
		errs = append(errs, NewConfigError("size", ErrInvalidSize))
	}
	size := c.Size
	if size == 0 {
		size = DefaultConfig(c.Family).Size
	}
	if c.StrokeWidth < 0 || !finite(c.StrokeWidth) || (c.Family.Radial() && c.StrokeWidth >= size) {
		errs = append(errs, NewConfigError("stroke_width", ErrInvalidSize))
	}
	if _, err := c.Colors.Resolve(); err != nil {
		errs = append(errs, NewConfigError("colors", err))
	}
	if c.Thresholds != nil {
		if _, err := c.Thresholds.Set(); err != nil {
			errs = append(errs, NewConfigError("thresholds", err))
		}
	}
	if c.MinValue != nil && c.MaxValue != nil && !(*c.MinValue < *c.MaxValue) {
		errs = append(errs, NewConfigError("min_value", fmt.Errorf("%w: %v >= %v", ErrInvalidDomain, *c.MinValue, *c.MaxValue)))
	}
	if c.Trend != nil && (c.Trend.Window < 0 || c.Trend.Tolerance.Amount < 0) {
		errs = append(errs, NewConfigError("trend", ErrInvalidTrend))
	}
	if c.SegmentGap != nil && (*c.SegmentGap < 0 || *c.SegmentGap >= 360 || !finite(*c.SegmentGap)) {
		errs = append(errs, NewConfigError("segment_gap", ErrInvalidSize))
	}
	if c.BarGap != nil && (*c.BarGap < 0 || *c.BarGap >= 1) {
		errs = append(errs, NewConfigError("bar_gap", ErrInvalidSize))
	}
	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// resolved is a validated configuration with every default applied.
type resolved struct {
	family          Family
	id              string
	title           string
	accessors       dataset.Accessors
	size            float64
	strokeWidth     float64
	colors          []string
	thresholds      *models.ThresholdSet
	thresholdColors map[models.Category]string
	formatter       format.Formatter
	minValue        *float64
	maxValue        *float64
	trend           stats.TrendOptions
	smooth          bool
	segmentGap      float64
	needleOffset    float64
	baseline        float64
	barGap          float64
}

// resolve applies defaults to c. Invalid fields are reported through warn
// and replaced with the family defaults; only an unknown family fails.
func resolve(c Config, warn func(field string, err error)) (resolved, error) {
	if !c.Family.Valid() {
		return resolved{}, NewConfigError("family", fmt.Errorf("%w: %q", ErrUnknownFamily, c.Family))
	}
	def := DefaultConfig(c.Family)

	r := resolved{
		family:       c.Family,
		title:        c.Title,
		accessors:    c.Accessors,
		size:         def.Size,
		strokeWidth:  def.StrokeWidth,
		formatter:    format.Plain,
		smooth:       true,
		segmentGap:   path.DefaultSegmentGapDeg,
		needleOffset: DefaultNeedleOffsetDeg,
		baseline:     100,
		barGap:       0.2,
	}
	r.id = path.InstanceID(string(c.Family), c.ID, c.Title)

	if c.Size != 0 {
		if c.Size > 0 && finite(c.Size) {
			r.size = c.Size
		} else {
			warn("size", ErrInvalidSize)
		}
	}
	if c.StrokeWidth != 0 {
		if c.StrokeWidth > 0 && finite(c.StrokeWidth) && !(c.Family.Radial() && c.StrokeWidth >= r.size) {
			r.strokeWidth = c.StrokeWidth
		} else {
			warn("stroke_width", ErrInvalidSize)
		}
	}
	if c.Family.Radial() && r.strokeWidth >= r.size {
		r.strokeWidth = r.size / 10
	}

	colors, err := c.Colors.Resolve()
	if err != nil {
		warn("colors", err)
		colors, _ = def.Colors.Resolve()
	}
	r.colors = colors

	thresholds := c.Thresholds
	if thresholds == nil {
		thresholds = def.Thresholds
	}
	if thresholds != nil {
		set, err := thresholds.Set()
		if err != nil {
			warn("thresholds", err)
			thresholds = def.Thresholds
			if thresholds != nil {
				set, err = thresholds.Set()
			}
		}
		if err == nil && thresholds != nil {
			r.thresholds = &set
			r.thresholdColors = thresholds.Colors
		}
	}

	if f := c.Format; f != nil {
		r.formatter = format.New(*f)
	} else if def.Format != nil {
		r.formatter = format.New(*def.Format)
	}

	r.minValue, r.maxValue = def.MinValue, def.MaxValue
	if c.MinValue != nil || c.MaxValue != nil {
		if c.MinValue != nil && c.MaxValue != nil && !(*c.MinValue < *c.MaxValue) {
			warn("min_value", ErrInvalidDomain)
		} else {
			if c.MinValue != nil {
				r.minValue = c.MinValue
			}
			if c.MaxValue != nil {
				r.maxValue = c.MaxValue
			}
		}
	}

	if def.Trend != nil {
		r.trend = *def.Trend
	}
	if c.Trend != nil {
		if c.Trend.Window < 0 || c.Trend.Tolerance.Amount < 0 {
			warn("trend", ErrInvalidTrend)
		} else {
			r.trend = *c.Trend
		}
	}
	if c.Smooth != nil {
		r.smooth = *c.Smooth
	}
	if c.SegmentGap != nil {
		if *c.SegmentGap >= 0 && *c.SegmentGap < 360 && finite(*c.SegmentGap) {
			r.segmentGap = *c.SegmentGap
		} else {
			warn("segment_gap", ErrInvalidSize)
		}
	}
	if c.NeedleOffset != nil && finite(*c.NeedleOffset) {
		r.needleOffset = *c.NeedleOffset
	}
	if c.Baseline != nil && finite(*c.Baseline) {
		r.baseline = *c.Baseline
	}
	if c.BarGap != nil {
		if *c.BarGap >= 0 && *c.BarGap < 1 {
			r.barGap = *c.BarGap
		} else {
			warn("bar_gap", ErrInvalidSize)
		}
	}
	return r, nil
}
