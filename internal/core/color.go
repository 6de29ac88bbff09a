package core

// Color represents a foreground color for a screen cell.
// The platform maps each color to an ANSI 256-color code.
type Color uint8

// Colors used by the arena view.
const (
	ColorDefault     Color = iota
	ColorRed               // facing indicator
	ColorYellow            // player
	ColorBlue              // walls
	ColorCyan              // ray fan
	ColorWhite             // HUD text
	ColorBrightWhite       // overlay titles
	ColorGray              // separators and help
)
