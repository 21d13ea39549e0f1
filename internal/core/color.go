package core

// Color is a foreground colour for a screen cell.
// The platform maps these to ANSI 256-colour codes.
type Color uint8

// Palette used by the driving world.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorDim
)
