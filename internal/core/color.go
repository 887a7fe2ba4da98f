package core

import "fmt"

// Color is an opaque RGB color used by draw operations.
// Shells translate it to their own representation (truecolor cells, RGBA).
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors for game elements.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorDanger = RGB(255, 0, 0) // Healthbar background
	ColorSafe   = RGB(0, 255, 0) // Healthbar foreground
)

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
