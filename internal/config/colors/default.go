package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background: "#1C1C1C",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Indicator
		IndicatorBg: "#262626",
		DotActive:   "#FFFFFF",
		DotInactive: "#585858",
	}
}
