package sprite

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// body is a positioned mask for tests.
type body struct {
	x, y int
	m    *Mask
}

func (b body) Position() (int, int) { return b.x, b.y }
func (b body) Shape() *Mask         { return b.m }

// naiveOverlap is the reference per-pixel test in field coordinates.
func naiveOverlap(a, b body) bool {
	for y := 0; y < a.m.Height(); y++ {
		for x := 0; x < a.m.Width(); x++ {
			if a.m.Get(x, y) && b.m.Get(a.x+x-b.x, a.y+y-b.y) {
				return true
			}
		}
	}
	return false
}

func randomMask(rng *rand.Rand, w, h int, density float64) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				m.Set(x, y)
			}
		}
	}
	return m
}

func TestMaskSetGet(t *testing.T) {
	m := NewMask(130, 3) // spans three words per row
	m.Set(0, 0)
	m.Set(63, 1)
	m.Set(64, 1)
	m.Set(129, 2)
	m.Set(130, 2) // out of bounds, ignored
	m.Set(-1, 0)  // out of bounds, ignored

	for _, p := range [][2]int{{0, 0}, {63, 1}, {64, 1}, {129, 2}} {
		if !m.Get(p[0], p[1]) {
			t.Errorf("Get(%d, %d) = false, expected true", p[0], p[1])
		}
	}
	if m.Get(1, 0) || m.Get(130, 2) || m.Get(-1, 0) {
		t.Error("Unset or out-of-bounds pixels should read as empty")
	}
	if m.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", m.Count())
	}
}

func TestMaskFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{A: 128})
	img.SetRGBA(2, 0, color.RGBA{A: 127}) // at threshold: transparent
	img.SetRGBA(3, 1, color.RGBA{B: 255, A: 200})

	m := MaskFromImage(img, DefaultAlphaThreshold)
	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("Mask size = %dx%d, expected 4x2", m.Width(), m.Height())
	}
	want := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {3, 1}: true}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if m.Get(x, y) != want[[2]int{x, y}] {
				t.Errorf("Get(%d, %d) = %v, expected %v", x, y, m.Get(x, y), want[[2]int{x, y}])
			}
		}
	}
}

func TestOverlapIrregularShapes(t *testing.T) {
	// Two L shapes whose bounding boxes overlap but whose pixels do not.
	l := FromPattern([]string{
		"#...",
		"#...",
		"####",
	}, Palette{'#': {A: 255}}, 1)
	flipped := FromPattern([]string{
		"####",
		"...#",
		"...#",
	}, Palette{'#': {A: 255}}, 1)

	a := body{x: 0, y: 0, m: MaskFromImage(l, DefaultAlphaThreshold)}
	b := body{x: 1, y: -1, m: MaskFromImage(flipped, DefaultAlphaThreshold)}

	if !Bounds(a).Intersects(Bounds(b)) {
		t.Fatal("Test setup: bounding boxes should intersect")
	}
	if Overlaps(a, b) {
		t.Error("Shapes with intersecting boxes but disjoint pixels should not overlap")
	}

	b.x, b.y = 0, 2 // b's top bar lands on a's bottom bar
	if !Overlaps(a, b) {
		t.Error("Shapes sharing a pixel row should overlap")
	}
}

func TestOverlapMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		a := body{
			x: rng.Intn(200) - 100,
			y: rng.Intn(200) - 100,
			m: randomMask(rng, 1+rng.Intn(140), 1+rng.Intn(40), 0.05),
		}
		b := body{
			x: a.x + rng.Intn(160) - 80,
			y: a.y + rng.Intn(60) - 30,
			m: randomMask(rng, 1+rng.Intn(140), 1+rng.Intn(40), 0.05),
		}

		want := naiveOverlap(a, b)
		if got := Overlaps(a, b); got != want {
			t.Fatalf("case %d: Overlaps(a, b) = %v, reference %v", i, got, want)
		}
		if got := Overlaps(b, a); got != want {
			t.Fatalf("case %d: Overlaps(b, a) = %v, reference %v (symmetry)", i, got, want)
		}
	}
}

func TestOverlapEmptyMasks(t *testing.T) {
	a := body{m: NewMask(10, 10)}
	b := body{m: NewMask(0, 0)}
	if Overlaps(a, b) || Overlaps(b, a) {
		t.Error("Empty masks never overlap")
	}

	full := NewMask(1, 1)
	full.Set(0, 0)
	c := body{x: 5, y: 5, m: full}
	if Overlaps(a, c) {
		t.Error("A mask with no set pixels never overlaps")
	}
}
