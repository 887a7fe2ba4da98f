package sprite

import (
	"image"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Sprite pairs an image with its precomputed occupancy mask.
// Sprites are read-only after construction and shared by reference.
type Sprite struct {
	Image image.Image
	Mask  *Mask
}

// New creates a sprite from an image, deriving the mask from its alpha.
func New(img image.Image) *Sprite {
	return &Sprite{
		Image: img,
		Mask:  MaskFromImage(img, DefaultAlphaThreshold),
	}
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.Mask.Width() }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.Mask.Height() }

// Body is anything positioned in the field with an occupancy mask.
type Body interface {
	Position() (x, y int)
	Shape() *Mask
}

// Bounds returns the field-space bounding box of b.
func Bounds(b Body) core.Rect {
	x, y := b.Position()
	m := b.Shape()
	return core.NewRect(x, y, m.Width(), m.Height())
}

// Overlaps reports whether a and b share at least one occupied pixel.
// The bounding boxes are checked first; masks are only compared when the
// boxes intersect. Overlaps(a, b) == Overlaps(b, a) for every pair.
func Overlaps(a, b Body) bool {
	if !Bounds(a).Intersects(Bounds(b)) {
		return false
	}
	ax, ay := a.Position()
	bx, by := b.Position()
	return a.Shape().Overlap(b.Shape(), bx-ax, by-ay)
}
