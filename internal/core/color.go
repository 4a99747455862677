package core

// Color is a foreground colour for a screen cell or a vector stroke.
// Values map to ANSI 256-colour codes in the platform layer.
type Color uint8

// Terminal palette.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorOrange
	ColorYellow
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorRed
	ColorCyan
)

// Phosphor palette used by the vector stages. A CRT look: bright strokes,
// dim strokes and an amber accent.
const (
	Phosphor    = ColorBrightGreen
	PhosphorDim = ColorGreen
	Amber       = ColorOrange
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGreen:
		return "green"
	case ColorBrightGreen:
		return "bright-green"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	case ColorRed:
		return "red"
	case ColorCyan:
		return "cyan"
	default:
		return "unknown"
	}
}
