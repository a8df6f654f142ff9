package colors

// Dragon returns the Kanagawa Dragon color scheme (dark, muted earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Background: palette.dragonBlack1,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		IndicatorBg: palette.dragonBlack3,
		DotActive:   palette.dragonGreen2,
		DotInactive: palette.dragonBlack6,
	}
}
