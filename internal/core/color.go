package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the playground and control panel.
const (
	ColorDefault Color = iota
	ColorRed
	ColorWhite
	ColorBrightWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorDarkGray
)
