package shooter

import (
	"image"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// testArt is built once; sprites are read-only.
var testArt = assets.Build(750, 750)

// fixedRand always returns v (capped to n-1). With v = 1 enemies never
// fire, and every spawn lands at x = 51, y = -1499 with the same faction.
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return min(int(r), n-1)
}

// scriptedRand returns values in order, then falls back to 1.
type scriptedRand struct {
	vals []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return min(1, n-1)
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func newTestSession(rng Rand) (*Session, config.ShooterConfig) {
	cfg := config.DefaultShooterConfig()
	return NewSession(cfg, testArt, rng), cfg
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

type blitCall struct {
	img  image.Image
	x, y int
}

type labelCall struct {
	text string
	size int
	x, y int
}

type fakeLabel struct {
	text string
	size int
}

func (l fakeLabel) Width() int  { return len(l.text) * l.size / 2 }
func (l fakeLabel) Height() int { return l.size }

// recordingSurface records draw calls in order.
type recordingSurface struct {
	blits  []blitCall
	rects  []core.Rect
	colors []core.Color
	labels []labelCall
}

func (s *recordingSurface) Blit(img image.Image, x, y int) {
	s.blits = append(s.blits, blitCall{img, x, y})
}

func (s *recordingSurface) FillRect(r core.Rect, c core.Color) {
	s.rects = append(s.rects, r)
	s.colors = append(s.colors, c)
}

func (s *recordingSurface) Text(text string, size int, _ core.Color) core.Label {
	return fakeLabel{text, size}
}

func (s *recordingSurface) BlitLabel(l core.Label, x, y int) {
	fl := l.(fakeLabel)
	s.labels = append(s.labels, labelCall{fl.text, fl.size, x, y})
}

func (s *recordingSurface) label(text string) (labelCall, bool) {
	for _, l := range s.labels {
		if l.text == text {
			return l, true
		}
	}
	return labelCall{}, false
}
