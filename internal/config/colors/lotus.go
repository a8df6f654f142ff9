package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Background: palette.lotusWhite3,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray2,
		Normal: palette.lotusInk1,

		IndicatorBg: palette.lotusWhite4,
		DotActive:   palette.lotusInk1,
		DotInactive: palette.lotusGray2,
	}
}
