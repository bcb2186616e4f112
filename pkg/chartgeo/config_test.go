package chartgeo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/classify"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/stats"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const gaugeYAML = `
family: gauge
id: cpu
title: CPU load
value_key: load
colors: mono
thresholds:
  warning: 60
  danger: 85
min_value: 0
max_value: 200
trend:
  window: 2
  tolerance: {mode: relative, amount: 0.05}
format:
  decimals: 1
  unit: "%"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(gaugeYAML))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Family != FamilyGauge || cfg.ID != "cpu" || cfg.Title != "CPU load" {
		t.Errorf("Unexpected header fields: %+v", cfg)
	}
	if cfg.ValueKey != "load" {
		t.Errorf("ValueKey = %q, expected %q", cfg.ValueKey, "load")
	}
	if cfg.Colors.Name != "mono" {
		t.Errorf("Colors = %+v, expected the mono palette", cfg.Colors)
	}
	if cfg.Thresholds == nil || cfg.Thresholds.Danger == nil || *cfg.Thresholds.Danger != 85 {
		t.Errorf("Thresholds = %+v, expected danger 85", cfg.Thresholds)
	}
	if cfg.Trend == nil || cfg.Trend.Window != 2 || cfg.Trend.Tolerance.Mode != stats.ToleranceRelative {
		t.Errorf("Trend = %+v, expected window 2 relative", cfg.Trend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	chart := mustRender(t, []map[string]interface{}{{"load": 100}}, cfg)
	if chart.Gauge == nil || !approx(chart.Gauge.Angle, 90) {
		t.Errorf("Gauge = %+v, expected angle 90", chart.Gauge)
	}
	if chart.Classification == nil || chart.Classification.Category != models.CategoryDanger {
		t.Errorf("Classification = %+v, expected danger", chart.Classification)
	}
	if chart.Label != "100.0 %" {
		t.Errorf("Label = %q, expected %q", chart.Label, "100.0 %")
	}
}

func TestParseConfigPaletteList(t *testing.T) {
	cfg, err := ParseConfig([]byte("family: donut\ncolors: ['#111111', '#222222']\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	chart := mustRender(t, []map[string]interface{}{{"value": 1}, {"value": 1}, {"value": 1}}, cfg)
	want := []string{"#111111", "#222222", "#111111"}
	for i, seg := range chart.Segments {
		if seg.Color != want[i] {
			t.Errorf("Segment %d color = %q, expected %q", i, seg.Color, want[i])
		}
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := ParseConfig([]byte("family: [donut")); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.json")
	if err := os.WriteFile(path, []byte(`{"family": "progress", "max_value": 50}`), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Family != FamilyProgress || cfg.MaxValue == nil || *cfg.MaxValue != 50 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		wants []error
	}{
		{"defaults", DefaultConfig(FamilyDonut), nil},
		{"unknown family", Config{Family: "pie"}, []error{ErrUnknownFamily}},
		{"negative size", Config{Family: FamilyLine, Size: -1}, []error{ErrInvalidSize}},
		{"stroke too wide", Config{Family: FamilyDonut, StrokeWidth: 100}, []error{ErrInvalidSize}},
		{
			"thresholds",
			Config{Family: FamilyGauge, Thresholds: &Thresholds{Warning: models.Float(90), Danger: models.Float(70)}},
			[]error{ErrNonMonotonicThresholds},
		},
		{
			"several",
			Config{Family: "pie", Size: -1, MinValue: models.Float(5), MaxValue: models.Float(5)},
			[]error{ErrUnknownFamily, ErrInvalidSize, ErrInvalidDomain},
		},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if len(tt.wants) == 0 {
			if err != nil {
				t.Errorf("%s: Validate() = %v, expected nil", tt.name, err)
			}
			continue
		}
		for _, want := range tt.wants {
			if !errors.Is(err, want) {
				t.Errorf("%s: Validate() = %v, expected %v", tt.name, err, want)
			}
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected a *ConfigError, got %T", tt.name, err)
		}
	}
}

func TestThresholdsSet(t *testing.T) {
	tests := []struct {
		name     string
		th       Thresholds
		value    float64
		expected models.Category
	}{
		{"higher is worse", Thresholds{Warning: models.Float(70), Danger: models.Float(90)}, 80, models.CategoryWarning},
		{"higher is better", Thresholds{Success: models.Float(80), Warning: models.Float(60)}, 50, models.CategoryDanger},
		{"danger only", Thresholds{Danger: models.Float(90)}, 50, models.CategoryNormal},
		{
			"levels",
			Thresholds{Levels: []models.Threshold{{Cutoff: 10, Category: models.CategorySuccess}}, Default: models.CategoryWarning},
			5,
			models.CategoryWarning,
		},
	}

	for _, tt := range tests {
		set, err := tt.th.Set()
		if err != nil {
			t.Errorf("%s: Set failed: %v", tt.name, err)
			continue
		}
		if got := classify.Classify(tt.value, set); got != tt.expected {
			t.Errorf("%s: classify(%v) = %s, expected %s", tt.name, tt.value, got, tt.expected)
		}
	}

	if _, err := (Thresholds{}).Set(); !errors.Is(err, ErrEmptyThresholds) {
		t.Errorf("Expected ErrEmptyThresholds, got %v", err)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	for _, family := range Families() {
		if err := DefaultConfig(family).Validate(); err != nil {
			t.Errorf("DefaultConfig(%s).Validate() = %v", family, err)
		}
	}
}

func TestEmptyColorListFallsBack(t *testing.T) {
	cfg, err := ParseConfig([]byte("family: donut\ncolors: []\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Validate() = %v, expected ErrEmptyPalette", err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	chart := mustRender(t, []map[string]interface{}{{"value": 1}, {"value": 2}}, cfg, WithLogger(zap.New(core)))

	if n := logs.FilterField(zap.String("field", "colors")).Len(); n != 1 {
		t.Errorf("Expected 1 colors warning, got %d", n)
	}
	want, _ := classify.Named(classify.DefaultPaletteName).Resolve()
	if chart.Segments[0].Color != want[0] {
		t.Errorf("Expected the default palette, got %q", chart.Segments[0].Color)
	}
}
