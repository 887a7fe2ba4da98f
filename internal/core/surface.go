package core

import "image"

// Label is rendered text with a measurable size in field pixels.
// Only the Surface that produced a label can blit it.
type Label interface {
	Width() int
	Height() int
}

// Surface is the draw target a presentation shell hands to Game.Render.
// Coordinates are field pixels; shells scale as they need. The shell owns
// presenting the accumulated frame once Render returns.
type Surface interface {
	// Blit draws img with its top-left corner at (x, y).
	Blit(img image.Image, x, y int)
	// FillRect fills r with a solid color.
	FillRect(r Rect, c Color)
	// Text renders s at the given font size and color.
	Text(s string, size int, c Color) Label
	// BlitLabel draws a label produced by Text at (x, y).
	BlitLabel(l Label, x, y int)
}

// Game is the interface the presentation shells drive.
// Implementations contain pure logic; the shell handles input mapping,
// frame pacing, and display.
type Game interface {
	// ID returns a unique identifier (used for log prefixes).
	ID() string

	// Title returns a human-readable name for the window or terminal title.
	Title() string

	// Reset initializes the game in its menu state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst.
	Render(dst Surface)

	// State returns the current game state.
	State() GameState
}
