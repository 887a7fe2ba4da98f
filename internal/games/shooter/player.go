package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Healthbar geometry, in pixels below the hull.
const (
	healthbarGap    = 10
	healthbarHeight = 10
)

// Player is the ship under input control.
type Player struct {
	Combatant
}

// AdvanceProjectiles moves the player's shots by vel and resolves them
// against every live enemy. The first enemy a shot overlaps takes damage and
// is destroyed; the shot is consumed. It returns the surviving enemies and
// how many were destroyed. The input slice is not modified.
func (p *Player) AdvanceProjectiles(vel, fieldH, damage int, enemies []*Enemy) ([]*Enemy, int) {
	destroyed := make(map[*Enemy]bool)
	kept := p.Projectiles[:0]
	for _, shot := range p.Projectiles {
		shot.Move(vel)
		if shot.OffField(fieldH) {
			continue
		}
		hit := false
		for _, e := range enemies {
			if destroyed[e] {
				continue
			}
			if shot.Collides(e) {
				e.Hit(damage)
				destroyed[e] = true
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, shot)
		}
	}
	clear(p.Projectiles[len(kept):])
	p.Projectiles = kept

	if len(destroyed) == 0 {
		return enemies, 0
	}
	alive := make([]*Enemy, 0, len(enemies)-len(destroyed))
	for _, e := range enemies {
		if !destroyed[e] {
			alive = append(alive, e)
		}
	}
	return alive, len(destroyed)
}

// HealthbarRect returns the full healthbar area.
func (p *Player) HealthbarRect() core.Rect {
	return core.NewRect(p.X, p.Y+p.Height()+healthbarGap, p.Width(), healthbarHeight)
}

// DrawHealthbar draws the danger-colored bar with the remaining health
// ratio overlaid in the safe color.
func (p *Player) DrawHealthbar(dst core.Surface) {
	bar := p.HealthbarRect()
	dst.FillRect(bar, core.ColorDanger)

	health := core.Clamp(p.Health, 0, p.MaxHealth)
	if p.MaxHealth <= 0 || health == 0 {
		return
	}
	bar.W = bar.W * health / p.MaxHealth
	dst.FillRect(bar, core.ColorSafe)
}

// Draw renders the hull, shots, and healthbar.
func (p *Player) Draw(dst core.Surface) {
	p.Combatant.Draw(dst)
	p.DrawHealthbar(dst)
}
