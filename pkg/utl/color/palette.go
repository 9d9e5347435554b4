package color

// Palette maps color names to hex values.
var Palette = map[string]string{
	"white":    "#FFFFFF",
	"black":    "#000000",
	"platinum": "#E2E2E2",

	"ltGrey":     "#cacaca",
	"mdGrey":     "#666",
	"dkGrey":     "#333",
	"mintCream":  "#f5fbfc",
	"paynesGrey": "#506381",
	"outerSpace": "#4a4a4a",

	// reds
	"pinkFieryRose":    "#f7566d",
	"fieryRose":        "#ff5964",
	"coralRed":         "#ff3743",
	"radicalRed":       "#F23558",
	"goldenGateBridge": "#C32F27",
	"alabamaCrimson":   "#b00018",
	"heidelbergRed":    "#a4001d",
	"persianRed":       "#D32F2F",

	// blues
	"azureMist":          "#f1fdff",
	"ceil":               "#86a6d1",
	"rackleyBlue":        "#6494AA",
	"airSuperiorityBlue": "#7893BE",
	"brilliantAzure":     "#35a7ff",
	"blueDeFrance":       "#418CF0",
	"newCar":             "#255FDB",
	"brightNavyBlue":     "#1976D2",
	"trueBlue":           "#005CDB",
	"richElectricBlue":   "#129CDD",
	"bdazzledBlue":       "#2e5790",
	"darkImperialBlue":   "#1A3B69",
	"deepKoamaru":        "#213463",
	"seaBlue":            "#056492",
	"metallicSeaweed":    "#1B8896",
	"moonstoneBlue":      "#5EB1BF",
	"queenBlue":          "#476E84",

	// greens
	"teaGreen":       "#CEEDD2",
	"shinyShamrock":  "#61ae59",
	"caribbeanGreen": "#02c39a",
	"mayGreen":       "#43A047",
	"mughalGreen":    "#27592E",
	"smoke":          "#6C806F",
	"pearlAqua":      "#80CBC4",

	// yellows
	"buff":              "#F3D288",
	"paleSpringBud":     "#F0F3BD",
	"crayolaYellow":     "#FFE382",
	"bananaYellow":      "#FFEE23",
	"fluorescentOrange": "#FFBF00",
	"meatBrown":         "#F7B538",
	"gargoyleGas":       "#ffe743",

	// oranges
	"sinopia":       "#FCB441",
	"redOrange":     "#E0400A",
	"darkTangerine": "#fcb813",
	"copperRed":     "#CA6B4B",
	"melon":         "#F1B9A8",
	"fulvous":       "#E0830A",

	// purples
	"orchid":           "#DA70D6",
	"pictorialCarmine": "#C40863",
	"jazzberryJam":     "#B81365",
	"htmlPurple":       "#801B96",
	"redViolet":        "#C71585",
}
