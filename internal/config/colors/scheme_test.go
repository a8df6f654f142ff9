package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsAreComplete(t *testing.T) {
	for _, name := range Presets {
		p := GetPreset(name)
		assert.Equal(t, name, p.Preset)
		for field, v := range map[string]string{
			"accent":       p.Accent,
			"background":   p.Background,
			"indicator_bg": p.IndicatorBg,
			"dot_active":   p.DotActive,
			"dot_inactive": p.DotInactive,
		} {
			assert.NotEmpty(t, v, "%s.%s", name, field)
		}
	}
	assert.False(t, IsPreset("neon"))
}

func TestApplyDefaultsKeepsCustomValues(t *testing.T) {
	c := ColorScheme{Preset: "dragon", DotActive: "#123456"}
	c.ApplyDefaults()

	assert.Equal(t, "#123456", c.DotActive)
	assert.Equal(t, Dragon().DotInactive, c.DotInactive)
}

func TestMergeFromPresetChange(t *testing.T) {
	c := *Default()
	c.Accent = "#ABCDEF"

	c.MergeFrom(ColorScheme{Preset: "lotus", Title: "#000001"})
	assert.Equal(t, "lotus", c.Preset)
	assert.Equal(t, Lotus().Accent, c.Accent, "a preset change resets unset colors")
	assert.Equal(t, "#000001", c.Title)

	c.MergeFrom(ColorScheme{DotActive: "#FFFFF0"})
	assert.Equal(t, "#FFFFF0", c.DotActive)
	assert.Equal(t, "#000001", c.Title)
}
