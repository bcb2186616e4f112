package classify

import (
	"errors"
	"sort"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"gopkg.in/yaml.v3"
)

// ErrEmptyPalette indicates a palette that resolves to no colors.
var ErrEmptyPalette = errors.New("palette has no colors")

// DefaultPaletteName names the palette used when nothing else resolves.
const DefaultPaletteName = "default"

var namedPalettes = map[string][]string{
	DefaultPaletteName: {"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4", "#ec4899", "#84cc16"},
	"grades":           {"#10b981", "#34d399", "#60a5fa", "#fbbf24", "#f97316", "#ef4444"},
	"attendance":       {"#10b981", "#f59e0b", "#60a5fa", "#ef4444"},
	"mono":             {"#1e3a8a", "#1d4ed8", "#3b82f6", "#93c5fd"},
}

// CategoryColors are the default display colors of the category tokens.
var CategoryColors = map[models.Category]string{
	models.CategorySuccess: "#10b981",
	models.CategoryWarning: "#f59e0b",
	models.CategoryDanger:  "#ef4444",
	models.CategoryNormal:  "#3b82f6",
}

// Palette is either a named palette or an explicit color list. Colors wins
// when both are set. A non-nil empty Colors is an explicit empty list and
// does not resolve.
type Palette struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// UnmarshalYAML accepts a palette name, a list of colors, or the full form.
func (p *Palette) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*p = Palette{Name: value.Value}
		return nil
	case yaml.SequenceNode:
		colors := []string{}
		if err := value.Decode(&colors); err != nil {
			return err
		}
		*p = Palette{Colors: colors}
		return nil
	}
	type plain Palette
	if err := value.Decode((*plain)(p)); err != nil {
		return err
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "colors" && p.Colors == nil {
			p.Colors = []string{}
		}
	}
	return nil
}

// Named returns a palette referring to name.
func Named(name string) Palette {
	return Palette{Name: name}
}

// Resolve returns the palette's colors, or ErrEmptyPalette when the palette
// lists an empty set of colors or names no known palette.
func (p Palette) Resolve() ([]string, error) {
	if p.Colors != nil {
		if len(p.Colors) == 0 {
			return nil, ErrEmptyPalette
		}
		return p.Colors, nil
	}
	name := p.Name
	if name == "" {
		name = DefaultPaletteName
	}
	if colors, ok := namedPalettes[name]; ok {
		return colors, nil
	}
	return nil, ErrEmptyPalette
}

// ColorAt returns color i of colors, cycling. It returns "" for no colors.
func ColorAt(colors []string, i int) string {
	if len(colors) == 0 || i < 0 {
		return ""
	}
	return colors[i%len(colors)]
}

// PaletteNames lists the named palettes.
func PaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve classifies value and attaches the display color of the category,
// taken from colors first and CategoryColors second.
func Resolve(value float64, set models.ThresholdSet, colors map[models.Category]string) models.Classification {
	cat := Classify(value, set)
	color, ok := colors[cat]
	if !ok {
		color = CategoryColors[cat]
	}
	return models.Classification{Category: cat, Color: color}
}
