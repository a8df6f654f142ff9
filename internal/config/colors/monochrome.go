package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Background
		Background: "#121212",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Indicator
		IndicatorBg: "#000000",
		DotActive:   "#FFFFFF",
		DotInactive: "#3A3A3A",
	}
}
