// Package sprite implements exact-shape collision: per-pixel occupancy masks
// derived from sprite images, and the overlap test between positioned masks.
package sprite

import (
	"image"
	"math/bits"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// DefaultAlphaThreshold matches the usual "more than half opaque" rule:
// a pixel is occupied when its alpha is strictly above this value.
const DefaultAlphaThreshold = 127

// Mask is a per-pixel occupancy bitmap. Rows are packed into 64-bit words;
// bits past the mask width are always zero.
type Mask struct {
	w, h   int
	stride int // words per row
	bits   []uint64
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

// MaskFromImage builds a mask from an image's alpha channel.
// Pixels with alpha above threshold (8-bit scale) are occupied.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	limit := uint32(threshold) * 0x101 // scale to the 16-bit range of RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > limit {
				m.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks (x, y) as occupied. Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

// Get reports whether (x, y) is occupied. Out-of-bounds is never occupied.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of occupied pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// row returns the packed words of row y.
func (m *Mask) row(y int) []uint64 {
	return m.bits[y*m.stride : (y+1)*m.stride]
}

// window returns the 64 bits of row y starting at column start.
// Columns outside the mask read as zero.
func (m *Mask) window(y, start int) uint64 {
	if start >= m.w || start <= -64 || m.stride == 0 {
		return 0
	}
	row := m.row(y)
	if start < 0 {
		return row[0] << uint(-start)
	}
	wi, off := start/64, uint(start%64)
	v := row[wi] >> off
	if off != 0 && wi+1 < m.stride {
		v |= row[wi+1] << (64 - off)
	}
	return v
}

// Overlap reports whether m and other share an occupied pixel when other's
// top-left corner is placed at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	area := core.NewRect(0, 0, m.w, m.h).Intersection(core.NewRect(dx, dy, other.w, other.h))
	if area.Empty() {
		return false
	}
	first, last := area.X/64, (area.Right()-1)/64
	for y := area.Y; y < area.Bottom(); y++ {
		row := m.row(y)
		for wi := first; wi <= last; wi++ {
			a := row[wi]
			if a == 0 {
				continue
			}
			if a&other.window(y-dy, wi*64-dx) != 0 {
				return true
			}
		}
	}
	return false
}
