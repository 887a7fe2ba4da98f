// Package assets builds the game's pixel-art sprites. Every image is
// generated once and shared read-only by all entities of the same role.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/sprite"
)

// Scale is the pixel size of one pattern cell.
const Scale = 4

// Laser frame sizes. The visible streak is centered in its frame, so a shot
// spawned at a ship's x lines up under (or over) the hull.
const (
	PlayerLaserWidth  = 88
	EnemyLaserWidth   = 78
	LaserFrameHeight  = 40
	starDensity       = 2500 // one star per this many field pixels
	backgroundSeed    = 1977
)

// Faction tags an enemy's visuals. Factions differ only cosmetically.
type Faction int

const (
	FactionRed Faction = iota
	FactionGreen
	FactionBlue
)

// Factions lists every faction in table order.
var Factions = [...]Faction{FactionRed, FactionGreen, FactionBlue}

// String returns the faction name.
func (f Faction) String() string {
	switch f {
	case FactionRed:
		return "red"
	case FactionGreen:
		return "green"
	case FactionBlue:
		return "blue"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// Pair is the hull and projectile look of one faction.
type Pair struct {
	Ship  *sprite.Sprite
	Laser *sprite.Sprite
}

// Set holds every sprite the game draws.
type Set struct {
	Player      *sprite.Sprite
	PlayerLaser *sprite.Sprite
	Background  *image.RGBA

	factions [len(Factions)]Pair
}

// Faction returns the sprite pair of f. Unknown factions fall back to red.
func (s *Set) Faction(f Faction) Pair {
	if f < 0 || int(f) >= len(s.factions) {
		return s.factions[FactionRed]
	}
	return s.factions[f]
}

var (
	yellow = color.RGBA{R: 255, G: 204, B: 0, A: 255}
	amber  = color.RGBA{R: 230, G: 140, B: 0, A: 255}
	umber  = color.RGBA{R: 90, G: 70, B: 0, A: 255}
	glass  = color.RGBA{R: 200, G: 230, B: 255, A: 255}
	flame  = color.RGBA{R: 255, G: 90, B: 0, A: 255}
	hot    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var factionColors = [len(Factions)]color.RGBA{
	FactionRed:   {R: 220, G: 40, B: 40, A: 255},
	FactionGreen: {R: 40, G: 200, B: 70, A: 255},
	FactionBlue:  {R: 50, G: 110, B: 240, A: 255},
}

var playerPattern = []string{
	"..........YY..........",
	".........YYYY.........",
	".........YWWY.........",
	"........YYWWYY........",
	"........YWWWWY........",
	"........YYYYYY........",
	".......YYYYYYYY.......",
	"..D....YYOOOOYY....D..",
	"..Y...YYYOOOOYYY...Y..",
	"..Y..YYYYYYYYYYYY..Y..",
	".YY.YYYYYYYYYYYYYY.YY.",
	".YYYYYYYYOOOOYYYYYYYY.",
	"YYYYYYYYYOOOOYYYYYYYYY",
	"YYYYYYYYYYYYYYYYYYYYYY",
	"YYY.YYYYYYYYYYYYYY.YYY",
	"YY...YYYDDDDDDYYY...YY",
	"Y.....YYD....DYY.....Y",
	"......YY......YY......",
	"......FF......FF......",
	".......F......F.......",
}

var enemyPattern = []string{
	"...XXXXXX...",
	"..XXWWWWXX..",
	".XXXWWWWXXX.",
	"XXXXXXXXXXXX",
	"XX.XXXXXX.XX",
	"XX.XDDDDX.XX",
	"X..XXXXXX..X",
	"...XX..XX...",
	"..XX....XX..",
	"..X......X..",
}

var laserPattern = []string{
	".C.",
	"CWC",
	"CWC",
	"CWC",
	"CWC",
	".C.",
}

// laserScale is finer than Scale so streaks stay narrow.
const laserScale = 3

// Build generates the sprite set and a w x h starfield background.
func Build(w, h int) *Set {
	s := &Set{
		Player: sprite.New(sprite.FromPattern(playerPattern, sprite.Palette{
			'Y': yellow, 'O': amber, 'D': umber, 'W': glass, 'F': flame,
		}, Scale)),
		PlayerLaser: laser(yellow, PlayerLaserWidth),
		Background:  Background(w, h, backgroundSeed),
	}
	for _, f := range Factions {
		c := factionColors[f]
		s.factions[f] = Pair{
			Ship: sprite.New(sprite.FromPattern(enemyPattern, sprite.Palette{
				'X': c, 'W': glass, 'D': shade(c),
			}, Scale)),
			Laser: laser(c, EnemyLaserWidth),
		}
	}
	return s
}

func laser(c color.RGBA, frameW int) *sprite.Sprite {
	streak := sprite.FromPattern(laserPattern, sprite.Palette{'C': c, 'W': hot}, laserScale)
	return sprite.New(sprite.Framed(streak, frameW, LaserFrameHeight))
}

func shade(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// Background draws a starfield on a near-black sky. The same seed always
// yields the same sky.
func Background(w, h int, seed int64) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sky := color.RGBA{R: 4, G: 4, B: 18, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, sky)
		}
	}
	if w == 0 || h == 0 {
		return img
	}

	rng := rand.New(rand.NewSource(seed))
	stars := w * h / starDensity
	for i := 0; i < stars; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		v := uint8(120 + rng.Intn(136))
		star := color.RGBA{R: v, G: v, B: uint8(min(255, int(v)+30)), A: 255}
		img.SetRGBA(x, y, star)
		if rng.Intn(8) == 0 { // a few bright crosses
			img.SetRGBA(x+1, y, star)
			img.SetRGBA(x-1, y, star)
			img.SetRGBA(x, y+1, star)
			img.SetRGBA(x, y-1, star)
		}
	}
	return img
}
