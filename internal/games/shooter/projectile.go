package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/sprite"
)

// Projectile is a laser shot. Its velocity sign lives with whoever moves it:
// player shots travel up (negative), enemy shots travel down (positive).
type Projectile struct {
	X, Y   int
	sprite *sprite.Sprite
}

// NewProjectile creates a projectile with its top-left corner at (x, y).
func NewProjectile(x, y int, spr *sprite.Sprite) *Projectile {
	return &Projectile{X: x, Y: y, sprite: spr}
}

// Position implements sprite.Body.
func (p *Projectile) Position() (int, int) { return p.X, p.Y }

// Shape implements sprite.Body.
func (p *Projectile) Shape() *sprite.Mask { return p.sprite.Mask }

// Move translates the projectile vertically by vel.
func (p *Projectile) Move(vel int) {
	p.Y += vel
}

// OffField reports whether the projectile's y lies outside [0, height].
func (p *Projectile) OffField(height int) bool {
	return p.Y < 0 || p.Y > height
}

// Collides reports whether the projectile overlaps target pixel-exactly.
func (p *Projectile) Collides(target sprite.Body) bool {
	return sprite.Overlaps(p, target)
}

// Draw blits the projectile.
func (p *Projectile) Draw(dst core.Surface) {
	dst.Blit(p.sprite.Image, p.X, p.Y)
}
