package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// blockPalette is the cycle of colours used for numbered block values.
var blockPalette = []Color{
	ColorCyan,
	ColorBlue,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorMagenta,
	ColorRed,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorBrightRed,
	ColorWhite,
}

// BlockColor maps a nonzero block value to a display colour.
// Values past the palette wrap around; zero and negatives map to ColorDefault.
func BlockColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	return blockPalette[(value-1)%len(blockPalette)]
}
