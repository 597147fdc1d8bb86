package style

// Palette maps color names to terminal color values understood by lipgloss.
type Palette map[string]string

// DefaultPalette is the 16-color ANSI palette.
var DefaultPalette = Palette{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"purple":         "5",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-purple":  "13",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}
