package colors

// palette holds the Kanagawa colors shared by the wave, dragon and lotus presets
var palette = struct {
	sumiInk1, sumiInk3, sumiInk6             string
	fujiWhite, fujiGray                      string
	oniViolet, crystalBlue, waveAqua2        string
	dragonBlack1, dragonBlack3, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet     string
	dragonBlue2, dragonGreen2                string
	lotusWhite3, lotusWhite4, lotusInk1      string
	lotusGray2, lotusViolet4, lotusBlue4     string
}{
	sumiInk1:  "#181820",
	sumiInk3:  "#1F1F28",
	sumiInk6:  "#54546D",
	fujiWhite: "#DCD7BA",
	fujiGray:  "#727169",

	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",
	waveAqua2:   "#7AA89F",

	dragonBlack1: "#0D0C0C",
	dragonBlack3: "#181616",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonGreen2: "#87A987",

	lotusWhite3:  "#F2ECBC",
	lotusWhite4:  "#D5CEA3",
	lotusInk1:    "#545464",
	lotusGray2:   "#716E61",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
}
