package desktop

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// fontScale converts nominal label sizes to Go Regular pixel sizes. At 1.0
// the menu prompt would run past a 750 pixel field.
const fontScale = 0.6

// Surface adapts an ebiten frame to core.Surface. Images are uploaded to
// the GPU once and reused for every later frame.
type Surface struct {
	target *ebiten.Image
	images map[image.Image]*ebiten.Image
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// label is a measured string ready to draw.
type label struct {
	text string
	face *text.GoTextFace
	clr  color.RGBA
	w, h int
}

func (l *label) Width() int  { return l.w }
func (l *label) Height() int { return l.h }

// NewSurface loads the label font.
func NewSurface() (*Surface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load font: %w", err)
	}
	return &Surface{
		images: make(map[image.Image]*ebiten.Image),
		source: source,
		faces:  make(map[int]*text.GoTextFace),
	}, nil
}

// begin sets the frame Render draws into.
func (s *Surface) begin(screen *ebiten.Image) {
	s.target = screen
}

// Blit implements core.Surface.
func (s *Surface) Blit(img image.Image, x, y int) {
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	s.target.DrawImage(eimg, opts)
}

// FillRect implements core.Surface.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

// Text implements core.Surface.
func (s *Surface) Text(str string, size int, c core.Color) core.Label {
	face := s.face(size)
	w, h := text.Measure(str, face, face.Size)
	return &label{
		text: str,
		face: face,
		clr:  rgba(c),
		w:    int(math.Ceil(w)),
		h:    int(math.Ceil(h)),
	}
}

// BlitLabel implements core.Surface.
func (s *Surface) BlitLabel(l core.Label, x, y int) {
	lbl, ok := l.(*label)
	if !ok {
		return
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(lbl.clr)
	opts.LineSpacing = lbl.face.Size
	text.Draw(s.target, lbl.text, lbl.face, opts)
}

func (s *Surface) face(size int) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    s.source,
		Size:      float64(size) * fontScale,
		Direction: text.DirectionLeftToRight,
	}
	s.faces[size] = f
	return f
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
