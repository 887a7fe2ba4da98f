package tui

import (
	"image"
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// HalfBlock draws two stacked pixels in one cell: the foreground color is
// the upper pixel, the background color the lower one.
const HalfBlock = '▀'

// Surface rasterizes the field into a pixel buffer two pixels per cell tall,
// scaled down uniformly to fit the terminal. Text labels are laid over the
// cells as plain characters.
type Surface struct {
	fieldW, fieldH int

	cols, rows int
	pw, ph     int     // pixel buffer size
	offX       int     // first cell column of the field
	scale      float64 // pixels per field unit

	pix    []core.Color
	labels []placedLabel
	cache  map[image.Image]*scaledImage
}

type scaledImage struct {
	w, h   int
	pix    []core.Color
	opaque []bool
}

// textLabel is a one-line label. Its size is in field units.
type textLabel struct {
	text  []rune
	color core.Color
	w, h  int
}

func (l *textLabel) Width() int  { return l.w }
func (l *textLabel) Height() int { return l.h }

type placedLabel struct {
	label    *textLabel
	col, row int
}

// NewSurface creates a surface for a field of the given size drawn into
// cols x rows terminal cells.
func NewSurface(fieldW, fieldH, cols, rows int) *Surface {
	s := &Surface{fieldW: fieldW, fieldH: fieldH}
	s.Resize(cols, rows)
	return s
}

// Resize fits the field into a new cell area. Cached scaled sprites are dropped.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.scale = 0
	if s.fieldW > 0 && s.fieldH > 0 {
		s.scale = math.Min(float64(s.cols)/float64(s.fieldW), float64(s.rows*2)/float64(s.fieldH))
	}
	s.pw = int(float64(s.fieldW) * s.scale)
	s.ph = int(float64(s.fieldH) * s.scale)
	s.offX = (s.cols - s.pw) / 2
	s.pix = make([]core.Color, s.pw*s.ph)
	s.labels = s.labels[:0]
	s.cache = make(map[image.Image]*scaledImage)
}

// Size returns the pixel buffer size.
func (s *Surface) Size() (w, h int) { return s.pw, s.ph }

// Clear blanks the pixel buffer and drops placed labels.
func (s *Surface) Clear() {
	clear(s.pix)
	s.labels = s.labels[:0]
}

// Pixel returns the buffer color at pixel (x, y). Out of range is black.
func (s *Surface) Pixel(x, y int) core.Color {
	if x < 0 || x >= s.pw || y < 0 || y >= s.ph {
		return core.ColorBlack
	}
	return s.pix[y*s.pw+x]
}

func (s *Surface) toPixel(v int) int {
	return int(math.Floor(float64(v) * s.scale))
}

// Blit draws img scaled to the buffer. A buffer pixel takes the average of
// the opaque source pixels it covers, so thin sprites stay visible.
func (s *Surface) Blit(img image.Image, x, y int) {
	si := s.scaled(img)
	ox, oy := s.toPixel(x), s.toPixel(y)
	for j := 0; j < si.h; j++ {
		py := oy + j
		if py < 0 || py >= s.ph {
			continue
		}
		for i := 0; i < si.w; i++ {
			px := ox + i
			if px < 0 || px >= s.pw || !si.opaque[j*si.w+i] {
				continue
			}
			s.pix[py*s.pw+px] = si.pix[j*si.w+i]
		}
	}
}

func (s *Surface) scaled(img image.Image) *scaledImage {
	if si, ok := s.cache[img]; ok {
		return si
	}

	b := img.Bounds()
	si := &scaledImage{
		w: int(math.Ceil(float64(b.Dx()) * s.scale)),
		h: int(math.Ceil(float64(b.Dy()) * s.scale)),
	}
	n := si.w * si.h
	si.pix = make([]core.Color, n)
	si.opaque = make([]bool, n)
	s.cache[img] = si
	if n == 0 {
		return si
	}

	sums := make([][3]uint32, n)
	counts := make([]uint32, n)
	for v := 0; v < b.Dy(); v++ {
		j := int(float64(v) * s.scale)
		for u := 0; u < b.Dx(); u++ {
			r, g, bl, a := img.At(b.Min.X+u, b.Min.Y+v).RGBA()
			if a <= 127*0x101 {
				continue
			}
			k := j*si.w + int(float64(u)*s.scale)
			sums[k][0] += r >> 8
			sums[k][1] += g >> 8
			sums[k][2] += bl >> 8
			counts[k]++
		}
	}
	for k, c := range counts {
		if c == 0 {
			continue
		}
		si.opaque[k] = true
		si.pix[k] = core.RGB(uint8(sums[k][0]/c), uint8(sums[k][1]/c), uint8(sums[k][2]/c))
	}
	return si
}

// FillRect fills every buffer pixel r touches.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	x0 := max(s.toPixel(r.X), 0)
	y0 := max(s.toPixel(r.Y), 0)
	x1 := min(int(math.Ceil(float64(r.Right())*s.scale)), s.pw)
	y1 := min(int(math.Ceil(float64(r.Bottom())*s.scale)), s.ph)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.pix[y*s.pw+x] = c
		}
	}
}

// Text creates a one-cell-tall label. Terminal text has a single size, so
// size is ignored; the label reports its cell footprint in field units.
func (s *Surface) Text(text string, _ int, c core.Color) core.Label {
	runes := []rune(text)
	l := &textLabel{text: runes, color: c}
	if s.scale > 0 {
		l.w = int(math.Ceil(float64(len(runes)) / s.scale))
		l.h = int(math.Ceil(2 / s.scale))
	}
	return l
}

// BlitLabel places a label from Text with its top-left corner at (x, y).
func (s *Surface) BlitLabel(l core.Label, x, y int) {
	tl, ok := l.(*textLabel)
	if !ok {
		return
	}
	s.labels = append(s.labels, placedLabel{
		label: tl,
		col:   s.offX + s.toPixel(x),
		row:   s.toPixel(y) / 2,
	})
}

// Present writes the frame into screen as half-block cells with the labels
// on top. The screen is resized to the surface's cell area if needed.
func (s *Surface) Present(screen *core.Screen) {
	if screen.Width() != s.cols || screen.Height() != s.rows {
		screen.Resize(s.cols, s.rows)
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			px := col - s.offX
			if px < 0 || px >= s.pw || row*2 >= s.ph {
				screen.SetCell(col, row, core.Cell{Rune: ' ', FG: core.ColorWhite, BG: core.ColorBlack})
				continue
			}
			screen.SetCell(col, row, core.Cell{
				Rune: HalfBlock,
				FG:   s.Pixel(px, row*2),
				BG:   s.Pixel(px, row*2+1),
			})
		}
	}
	for _, pl := range s.labels {
		screen.DrawText(pl.col, pl.row, string(pl.label.text), pl.label.color)
	}
}
