package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: palette.oniViolet,

		// Background colors
		Background: palette.sumiInk1,

		// Text colors
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		// Indicator colors
		IndicatorBg: palette.sumiInk3,
		DotActive:   palette.waveAqua2,
		DotInactive: palette.sumiInk6,
	}
}
