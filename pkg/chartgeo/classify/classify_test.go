package classify

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"gopkg.in/yaml.v3"
)

func TestClassifyHigherIsWorse(t *testing.T) {
	set := HigherIsWorse(70, 90)

	tests := []struct {
		value    float64
		expected models.Category
	}{
		{95, models.CategoryDanger},
		{90, models.CategoryDanger},
		{89.9, models.CategoryWarning},
		{70, models.CategoryWarning},
		{10, models.CategoryNormal},
		{math.NaN(), models.CategoryNormal},
	}

	for _, tt := range tests {
		if got := Classify(tt.value, set); got != tt.expected {
			t.Errorf("Classify(%v) = %s, expected %s", tt.value, got, tt.expected)
		}
	}
}

func TestClassifyHigherIsBetter(t *testing.T) {
	set := HigherIsBetter(85, 60)

	tests := []struct {
		value    float64
		expected models.Category
	}{
		{90, models.CategorySuccess},
		{85, models.CategorySuccess},
		{60, models.CategoryWarning},
		{59, models.CategoryDanger},
	}

	for _, tt := range tests {
		if got := Classify(tt.value, set); got != tt.expected {
			t.Errorf("Classify(%v) = %s, expected %s", tt.value, got, tt.expected)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	sets := []models.ThresholdSet{
		HigherIsWorse(70, 90),
		HigherIsBetter(85, 60),
		{Levels: []models.Threshold{{Cutoff: 3.5, Category: "honors"}, {Cutoff: 2, Category: "good"}, {Cutoff: 1, Category: "probation"}}, Default: "failing"},
	}

	for _, set := range sets {
		prev := Rank(-1000, set)
		for v := -10.0; v <= 110; v += 0.25 {
			rank := Rank(v, set)
			if rank > prev {
				t.Errorf("Rank(%v) = %d after %d: classification moved down the set", v, rank, prev)
			}
			if got := Classify(v, set); rank < len(set.Levels) && got != set.Levels[rank].Category {
				t.Errorf("Classify(%v) = %s disagrees with rank %d", v, got, rank)
			}
			prev = rank
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(HigherIsWorse(70, 90)); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
	if err := Validate(HigherIsWorse(90, 70)); !errors.Is(err, ErrNonMonotonic) {
		t.Errorf("Validate(inverted) = %v, expected ErrNonMonotonic", err)
	}
	if err := Validate(HigherIsWorse(80, 80)); !errors.Is(err, ErrNonMonotonic) {
		t.Errorf("Validate(equal cutoffs) = %v, expected ErrNonMonotonic", err)
	}
	if err := Validate(models.ThresholdSet{}); !errors.Is(err, ErrEmptyThresholds) {
		t.Errorf("Validate(empty) = %v, expected ErrEmptyThresholds", err)
	}
	nan := models.ThresholdSet{Levels: []models.Threshold{{Cutoff: math.NaN(), Category: "x"}}}
	if err := Validate(nan); !errors.Is(err, ErrNonMonotonic) {
		t.Errorf("Validate(NaN) = %v, expected ErrNonMonotonic", err)
	}
}

func TestPaletteResolve(t *testing.T) {
	colors, err := Palette{}.Resolve()
	if err != nil || len(colors) == 0 || colors[0] != namedPalettes[DefaultPaletteName][0] {
		t.Errorf("Default palette = %v, %v", colors, err)
	}

	colors, err = Palette{Name: "grades", Colors: []string{"red"}}.Resolve()
	if err != nil || len(colors) != 1 || colors[0] != "red" {
		t.Errorf("Explicit colors should win, got %v, %v", colors, err)
	}

	if _, err := Named("neon").Resolve(); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Unknown palette error = %v, expected ErrEmptyPalette", err)
	}

	if _, err := (Palette{Name: "grades", Colors: []string{}}).Resolve(); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("Empty color list error = %v, expected ErrEmptyPalette", err)
	}
}

func TestPaletteYAMLEmptyColors(t *testing.T) {
	docs := []string{
		"palette: []\n",
		"palette:\n  colors: []\n",
		"palette:\n  name: mono\n  colors: []\n",
	}

	for _, d := range docs {
		var doc struct {
			Palette Palette `yaml:"palette"`
		}
		if err := yaml.Unmarshal([]byte(d), &doc); err != nil {
			t.Errorf("yaml.Unmarshal(%q) failed: %v", d, err)
			continue
		}
		if _, err := doc.Palette.Resolve(); !errors.Is(err, ErrEmptyPalette) {
			t.Errorf("Resolve(%q) = %v, expected ErrEmptyPalette", d, err)
		}
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if len(names) != len(namedPalettes) {
		t.Fatalf("Expected %d names, got %v", len(namedPalettes), names)
	}
	for i, name := range names {
		if i > 0 && names[i-1] >= name {
			t.Errorf("Names not sorted: %v", names)
		}
		if _, err := Named(name).Resolve(); err != nil {
			t.Errorf("Named(%q).Resolve() = %v", name, err)
		}
	}
}

func TestPaletteYAML(t *testing.T) {
	tests := []struct {
		doc      string
		expected Palette
	}{
		{`palette: grades`, Palette{Name: "grades"}},
		{`palette: ["#fff", "#000"]`, Palette{Colors: []string{"#fff", "#000"}}},
		{"palette:\n  name: mono\n", Palette{Name: "mono"}},
	}

	for _, tt := range tests {
		var doc struct {
			Palette Palette `yaml:"palette"`
		}
		if err := yaml.Unmarshal([]byte(tt.doc), &doc); err != nil {
			t.Errorf("yaml.Unmarshal(%q) failed: %v", tt.doc, err)
			continue
		}
		if doc.Palette.Name != tt.expected.Name || len(doc.Palette.Colors) != len(tt.expected.Colors) {
			t.Errorf("yaml.Unmarshal(%q) = %+v, expected %+v", tt.doc, doc.Palette, tt.expected)
		}
	}
}

func TestColorAt(t *testing.T) {
	colors := []string{"a", "b"}
	if ColorAt(colors, 3) != "b" || ColorAt(nil, 0) != "" || ColorAt(colors, -1) != "" {
		t.Error("ColorAt returned unexpected colors")
	}
}

func TestResolveClassification(t *testing.T) {
	got := Resolve(95, HigherIsWorse(70, 90), nil)
	if got.Category != models.CategoryDanger || got.Color != CategoryColors[models.CategoryDanger] {
		t.Errorf("Resolve = %+v", got)
	}

	got = Resolve(10, HigherIsWorse(70, 90), map[models.Category]string{models.CategoryNormal: "gray"})
	if got.Color != "gray" {
		t.Errorf("Expected override color, got %+v", got)
	}
}
