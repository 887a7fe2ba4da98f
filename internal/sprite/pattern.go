package sprite

import (
	"image"
	"image/color"
)

// Palette maps pattern runes to colors. Runes missing from the palette,
// along with '.' and ' ', are transparent.
type Palette map[rune]color.RGBA

// FromPattern rasterizes pixel art. Each rune of rows becomes a scale x scale
// block; rows shorter than the widest row are padded with transparency.
func FromPattern(rows []string, pal Palette, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, len(rows)*scale))
	for py, r := range rows {
		for px, ch := range []rune(r) {
			c, ok := pal[ch]
			if !ok || ch == '.' || ch == ' ' {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(px*scale+dx, py*scale+dy, c)
				}
			}
		}
	}
	return img
}

// Framed returns img centered on a transparent canvas of size w x h.
// Used for projectiles whose visible streak is narrower than their frame.
func Framed(img *image.RGBA, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	ox := (w - b.Dx()) / 2
	oy := (h - b.Dy()) / 2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetRGBA(x-b.Min.X+ox, y-b.Min.Y+oy, img.RGBAAt(x, y))
		}
	}
	return out
}
