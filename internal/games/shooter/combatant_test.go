package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestCooldownRateLimit(t *testing.T) {
	tests := []struct {
		name string
		fire func(s *Session) (*Combatant, func() bool)
	}{
		{
			name: "player",
			fire: func(s *Session) (*Combatant, func() bool) {
				return &s.Player.Combatant, s.Player.Fire
			},
		},
		{
			name: "enemy",
			fire: func(s *Session) (*Combatant, func() bool) {
				e := s.Waves().NewEnemy(100, 100, 0)
				return &e.Combatant, e.Fire
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(fixedRand(1))
			c, fire := tt.fire(s)

			var firedAt []int
			for frame := range 60 {
				c.TickCooldown()
				if fire() {
					firedAt = append(firedAt, frame)
				}
			}
			if len(c.Projectiles) != 2 || len(firedAt) != 2 {
				t.Fatalf("expected 2 shots in 60 frames, got %d (frames %v)", len(c.Projectiles), firedAt)
			}
			if firedAt[0] != 0 || firedAt[1] != 30 {
				t.Errorf("shots fired at frames %v, expected [0 30]", firedAt)
			}
		})
	}
}

func TestCooldownCounter(t *testing.T) {
	s, _ := newTestSession(fixedRand(1))
	p := s.Player

	if p.Cooldown() != 0 {
		t.Fatalf("new combatant cooldown = %d, expected 0", p.Cooldown())
	}
	p.TickCooldown()
	if p.Cooldown() != 0 {
		t.Error("an idle cooldown should stay at 0")
	}

	p.Fire()
	if p.Cooldown() != 1 {
		t.Fatalf("cooldown after firing = %d, expected 1", p.Cooldown())
	}
	if p.Fire() {
		t.Error("firing during cooldown should be a no-op")
	}
	for range 29 {
		p.TickCooldown()
	}
	if p.Cooldown() != 30 {
		t.Fatalf("cooldown = %d, expected 30", p.Cooldown())
	}
	p.TickCooldown()
	if p.Cooldown() != 0 {
		t.Errorf("cooldown should reset to 0 after reaching the limit, got %d", p.Cooldown())
	}
}

func TestEnemyShotOffset(t *testing.T) {
	s, cfg := newTestSession(fixedRand(1))
	e := s.Waves().NewEnemy(200, 120, 2)

	if !e.Fire() {
		t.Fatal("a fresh enemy should be able to fire")
	}
	shot := e.Projectiles[0]
	if shot.X != 200-cfg.Enemy.ShotOffset || shot.Y != 120 {
		t.Errorf("enemy shot at (%d, %d), expected (%d, 120)", shot.X, shot.Y, 200-cfg.Enemy.ShotOffset)
	}

	s.Player.Fire()
	if ps := s.Player.Projectiles[0]; ps.X != s.Player.X || ps.Y != s.Player.Y {
		t.Errorf("player shot at (%d, %d), expected the player position", ps.X, ps.Y)
	}
}

func TestProjectileOffField(t *testing.T) {
	tests := []struct {
		name       string
		y, vel     int
		keptFrames int // frames the shot survives before removal
	}{
		{"leaving the top", 0, -5, 0},
		{"leaving the bottom", 740, 5, 2},
		{"bottom edge is inside", 745, 5, 1},
		{"far inside", 400, -5, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(fixedRand(1))
			e := s.Waves().NewEnemy(100, tt.y, 0)
			e.Projectiles = []*Projectile{NewProjectile(100, tt.y, testArt.PlayerLaser)}

			for frame := 1; frame <= tt.keptFrames; frame++ {
				e.AdvanceProjectiles(tt.vel, 750, 10, nil)
				if len(e.Projectiles) != 1 {
					t.Fatalf("shot removed after %d frames (y=%d), expected to survive %d",
						frame, tt.y+frame*tt.vel, tt.keptFrames)
				}
			}
			e.AdvanceProjectiles(tt.vel, 750, 10, nil)
			if len(e.Projectiles) != 0 {
				t.Errorf("shot at y=%d should be off-field", e.Projectiles[0].Y)
			}
		})
	}
}

func TestProjectileOffFieldBounds(t *testing.T) {
	p := NewProjectile(0, 0, testArt.PlayerLaser)
	for y, want := range map[int]bool{-5: true, -1: true, 0: false, 375: false, 750: false, 751: true, 755: true} {
		p.Y = y
		if got := p.OffField(750); got != want {
			t.Errorf("OffField at y=%d = %v, expected %v", y, got, want)
		}
	}
}

func TestEnemyShotDamagesPlayer(t *testing.T) {
	s, _ := newTestSession(fixedRand(1))
	e := s.Waves().NewEnemy(300, 0, 0)
	p := s.Player // (300, 650)

	// Two shots whose streaks land on the hull after one step, one that misses.
	e.Projectiles = []*Projectile{
		NewProjectile(306, 665, e.laser),
		NewProjectile(306, 668, e.laser),
		NewProjectile(10, 665, e.laser),
	}
	hits := e.AdvanceProjectiles(5, 750, 10, p)

	if hits != 2 {
		t.Errorf("hits = %d, expected 2", hits)
	}
	if p.Health != 80 {
		t.Errorf("player health = %d, expected 80", p.Health)
	}
	if len(e.Projectiles) != 1 || e.Projectiles[0].X != 10 {
		t.Errorf("only the missing shot should remain, got %d shots", len(e.Projectiles))
	}
}

func TestPlayerShotHitsOneEnemy(t *testing.T) {
	s, _ := newTestSession(fixedRand(1))
	first := s.Waves().NewEnemy(200, 300, 0)
	second := s.Waves().NewEnemy(200, 300, 1) // stacked on the first
	bystander := s.Waves().NewEnemy(500, 300, 2)
	enemies := []*Enemy{first, second, bystander}

	p := s.Player
	p.Projectiles = []*Projectile{NewProjectile(180, 305, p.laser)}

	alive, destroyed := p.AdvanceProjectiles(-5, 750, 10, enemies)

	if destroyed != 1 {
		t.Fatalf("destroyed = %d, expected 1", destroyed)
	}
	if first.Health != 90 || second.Health != 100 {
		t.Errorf("health first=%d second=%d, expected 90 and 100", first.Health, second.Health)
	}
	if len(alive) != 2 || alive[0] != second || alive[1] != bystander {
		t.Errorf("alive enemies wrong: %v", alive)
	}
	if len(p.Projectiles) != 0 {
		t.Error("the shot should be consumed by its hit")
	}
	if len(enemies) != 3 || enemies[0] != first {
		t.Error("the input slice must not be modified")
	}
}

func TestPlayerShotsNeverHitRemovedEnemy(t *testing.T) {
	s, _ := newTestSession(fixedRand(1))
	target := s.Waves().NewEnemy(200, 300, 0)

	p := s.Player
	p.Projectiles = []*Projectile{
		NewProjectile(180, 305, p.laser),
		NewProjectile(180, 306, p.laser),
	}
	alive, destroyed := p.AdvanceProjectiles(-5, 750, 10, []*Enemy{target})

	if destroyed != 1 || len(alive) != 0 {
		t.Fatalf("destroyed=%d alive=%d, expected 1 and 0", destroyed, len(alive))
	}
	if target.Health != 90 {
		t.Errorf("a removed enemy took extra damage: health %d", target.Health)
	}
	if len(p.Projectiles) != 1 {
		t.Errorf("the second shot should fly on, got %d shots", len(p.Projectiles))
	}
}

func TestHealthbar(t *testing.T) {
	tests := []struct {
		health  int
		safeW   int
		hasSafe bool
	}{
		{100, 88, true},
		{50, 44, true},
		{10, 8, true},
		{0, 0, false},
		{-10, 0, false},
	}

	for _, tt := range tests {
		s, _ := newTestSession(fixedRand(1))
		p := s.Player
		p.Health = tt.health

		var surf recordingSurface
		p.DrawHealthbar(&surf)

		wantBar := core.NewRect(300, 650+80+10, 88, 10)
		if len(surf.rects) == 0 || surf.rects[0] != wantBar || surf.colors[0] != core.ColorDanger {
			t.Errorf("health %d: background bar = %v, expected %v in danger color", tt.health, surf.rects, wantBar)
			continue
		}
		if !tt.hasSafe {
			if len(surf.rects) != 1 {
				t.Errorf("health %d: expected no safe bar", tt.health)
			}
			continue
		}
		if len(surf.rects) != 2 || surf.rects[1].W != tt.safeW || surf.colors[1] != core.ColorSafe {
			t.Errorf("health %d: safe bar = %v, expected width %d", tt.health, surf.rects, tt.safeW)
		}
	}
}

func TestCombatantDrawOrder(t *testing.T) {
	s, _ := newTestSession(fixedRand(1))
	p := s.Player
	p.Fire()

	var surf recordingSurface
	p.Draw(&surf)

	if len(surf.blits) != 2 {
		t.Fatalf("expected hull and one shot, got %d blits", len(surf.blits))
	}
	if surf.blits[0].img != testArt.Player.Image || surf.blits[1].img != testArt.PlayerLaser.Image {
		t.Error("hull should be drawn before its shots")
	}
	if len(surf.rects) != 2 {
		t.Errorf("player draw should include the healthbar, got %d rects", len(surf.rects))
	}
}
