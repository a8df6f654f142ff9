package pageview

// Theme holds the indicator presentation. Sizes are in terminal cells.
type Theme struct {
	Background  string
	DotActive   string
	DotInactive string
	DotGlyph    string
	DotSize     int
	Spacing     int
	Padding     int
}

// DefaultTheme returns the standard indicator look.
func DefaultTheme() Theme {
	return Theme{
		Background:  "#1C1C1C",
		DotActive:   "#FFFFFF",
		DotInactive: "#585858",
		DotGlyph:    "●",
		DotSize:     1,
		Spacing:     1,
		Padding:     1,
	}
}

// CompactTheme drops the gaps between dots for small terminals.
func CompactTheme() Theme {
	t := DefaultTheme()
	t.DotGlyph = "•"
	t.Spacing = 0
	t.Padding = 0
	return t
}

// ThemeByName returns a preset theme. Unknown names fall back to the default.
func ThemeByName(name string) Theme {
	if name == "compact" {
		return CompactTheme()
	}
	return DefaultTheme()
}

func (t Theme) normalized() Theme {
	if t.DotGlyph == "" {
		t.DotGlyph = DefaultTheme().DotGlyph
	}
	t.DotSize = max(t.DotSize, 1)
	t.Spacing = max(t.Spacing, 0)
	t.Padding = max(t.Padding, 0)
	return t
}
