package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/sprite"
)

// Target is something a projectile can damage.
type Target interface {
	sprite.Body
	Hit(damage int)
}

// Combatant is the state and behavior shared by the player and enemies:
// a positioned hull with health, a shot cooldown, and the shots it owns.
type Combatant struct {
	X, Y      int
	Health    int
	MaxHealth int

	Projectiles []*Projectile

	ship     *sprite.Sprite
	laser    *sprite.Sprite
	cooldown int // 0 = ready; counts up to limit after a shot
	limit    int
}

func newCombatant(x, y, health, cooldown int, ship, laser *sprite.Sprite) Combatant {
	return Combatant{
		X:         x,
		Y:         y,
		Health:    health,
		MaxHealth: health,
		ship:      ship,
		laser:     laser,
		limit:     cooldown,
	}
}

// Position implements sprite.Body.
func (c *Combatant) Position() (int, int) { return c.X, c.Y }

// Shape implements sprite.Body.
func (c *Combatant) Shape() *sprite.Mask { return c.ship.Mask }

// Width returns the hull width.
func (c *Combatant) Width() int { return c.ship.Width() }

// Height returns the hull height.
func (c *Combatant) Height() int { return c.ship.Height() }

// Cooldown returns the current cooldown counter.
func (c *Combatant) Cooldown() int { return c.cooldown }

// Dead reports whether health is exhausted.
func (c *Combatant) Dead() bool { return c.Health <= 0 }

// Hit applies damage. Health is not floored at zero.
func (c *Combatant) Hit(damage int) {
	c.Health -= damage
}

// Fire spawns a shot at the combatant's position when the cooldown allows.
// It reports whether a shot was fired.
func (c *Combatant) Fire() bool {
	return c.fireAt(c.X)
}

func (c *Combatant) fireAt(x int) bool {
	if c.cooldown != 0 {
		return false
	}
	c.Projectiles = append(c.Projectiles, NewProjectile(x, c.Y, c.laser))
	c.cooldown = 1
	return true
}

// TickCooldown advances the cooldown counter. Call exactly once per frame,
// before the frame's fire attempt.
func (c *Combatant) TickCooldown() {
	switch {
	case c.cooldown >= c.limit:
		c.cooldown = 0
	case c.cooldown > 0:
		c.cooldown++
	}
}

// AdvanceProjectiles moves every owned shot by vel, drops shots that left a
// field of the given height, and resolves hits against target. Each hit
// deals damage and consumes the shot. It returns the number of hits.
func (c *Combatant) AdvanceProjectiles(vel, fieldH, damage int, target Target) int {
	hits := 0
	kept := c.Projectiles[:0]
	for _, p := range c.Projectiles {
		p.Move(vel)
		switch {
		case p.OffField(fieldH):
		case target != nil && p.Collides(target):
			target.Hit(damage)
			hits++
		default:
			kept = append(kept, p)
		}
	}
	clear(c.Projectiles[len(kept):])
	c.Projectiles = kept
	return hits
}

// Draw blits the hull, then each owned shot.
func (c *Combatant) Draw(dst core.Surface) {
	dst.Blit(c.ship.Image, c.X, c.Y)
	for _, p := range c.Projectiles {
		p.Draw(dst)
	}
}
