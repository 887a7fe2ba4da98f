package assets

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/sprite"
)

type sizeCase struct {
	name string
	spr  *sprite.Sprite
	w, h int
}

func TestBuildSizes(t *testing.T) {
	s := Build(750, 750)

	tests := []sizeCase{
		{"player", s.Player, 88, 80},
		{"player laser", s.PlayerLaser, PlayerLaserWidth, LaserFrameHeight},
	}
	for _, f := range Factions {
		p := s.Faction(f)
		tests = append(tests,
			sizeCase{f.String() + " ship", p.Ship, 48, 40},
			sizeCase{f.String() + " laser", p.Laser, EnemyLaserWidth, LaserFrameHeight},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.spr.Width() != tt.w || tt.spr.Height() != tt.h {
				t.Errorf("size = %dx%d, expected %dx%d", tt.spr.Width(), tt.spr.Height(), tt.w, tt.h)
			}
			if tt.spr.Mask.Count() == 0 {
				t.Error("sprite has no occupied pixels")
			}
			if tt.spr.Mask.Count() == tt.w*tt.h {
				t.Error("sprite is fully opaque; expected an irregular shape")
			}
		})
	}

	if b := s.Background.Bounds(); b.Dx() != 750 || b.Dy() != 750 {
		t.Errorf("Background size = %dx%d, expected 750x750", b.Dx(), b.Dy())
	}
}

func TestLaserStreakCentered(t *testing.T) {
	s := Build(10, 10)
	m := s.PlayerLaser.Mask

	// The streak is 9 pixels wide, centered in an 88 pixel frame.
	if m.Get(0, LaserFrameHeight/2) || m.Get(PlayerLaserWidth-1, LaserFrameHeight/2) {
		t.Error("laser frame edges should be transparent")
	}
	if !m.Get(PlayerLaserWidth/2, LaserFrameHeight/2) {
		t.Error("laser streak should occupy the frame center")
	}
}

func TestFactionsShareSprites(t *testing.T) {
	s := Build(10, 10)
	if s.Faction(FactionBlue).Ship != s.Faction(FactionBlue).Ship {
		t.Error("Faction should return the same shared sprite every time")
	}
	if s.Faction(FactionRed).Ship == s.Faction(FactionGreen).Ship {
		t.Error("factions should not share hull sprites")
	}
	if s.Faction(Faction(42)).Ship != s.Faction(FactionRed).Ship {
		t.Error("unknown factions should fall back to red")
	}
}

func TestBackgroundDeterministic(t *testing.T) {
	a := Background(100, 100, 3)
	b := Background(100, 100, 3)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("backgrounds with the same seed differ at byte %d", i)
		}
	}

	empty := Background(0, 0, 3)
	if !empty.Bounds().Empty() {
		t.Error("zero-size background should be empty")
	}
}

func TestFactionString(t *testing.T) {
	for f, want := range map[Faction]string{FactionRed: "red", FactionGreen: "green", FactionBlue: "blue", 7: "Faction(7)"} {
		if got := f.String(); got != want {
			t.Errorf("Faction(%d).String() = %q, expected %q", int(f), got, want)
		}
	}
}
