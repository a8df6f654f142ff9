package colors

import "slices"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and the help keys)
	Accent string `yaml:"accent"`

	// Root background
	Background string `yaml:"background"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted help descriptions
	Normal string `yaml:"normal"`

	// Page indicator
	IndicatorBg string `yaml:"indicator_bg"`
	DotActive   string `yaml:"dot_active"`
	DotInactive string `yaml:"dot_inactive"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// Presets lists the built-in scheme names
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// IsPreset reports whether name is a built-in scheme
func IsPreset(name string) bool {
	return slices.Contains(Presets, name)
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(preset)
}

// MergeFrom overrides colors with every non-empty value of other.
// Changing the preset resets all colors not set in other to that preset.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = mergeNonEmpty(*GetPreset(other.Preset), other)
		return
	}
	*c = mergeNonEmpty(*c, other)
}

func (c *ColorScheme) fillFrom(src *ColorScheme) {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Accent, src.Accent)
	fill(&c.Background, src.Background)
	fill(&c.Title, src.Title)
	fill(&c.Subtle, src.Subtle)
	fill(&c.Normal, src.Normal)
	fill(&c.IndicatorBg, src.IndicatorBg)
	fill(&c.DotActive, src.DotActive)
	fill(&c.DotInactive, src.DotInactive)
}

func mergeNonEmpty(base, over ColorScheme) ColorScheme {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Preset, over.Preset)
	set(&base.Accent, over.Accent)
	set(&base.Background, over.Background)
	set(&base.Title, over.Title)
	set(&base.Subtle, over.Subtle)
	set(&base.Normal, over.Normal)
	set(&base.IndicatorBg, over.IndicatorBg)
	set(&base.DotActive, over.DotActive)
	set(&base.DotInactive, over.DotInactive)
	return base
}
