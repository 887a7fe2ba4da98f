package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
)

// Enemy is a descending hostile ship.
type Enemy struct {
	Combatant
	Faction assets.Faction

	shotOffset int
}

// Descend moves the enemy down by vel.
func (e *Enemy) Descend(vel int) {
	e.Y += vel
}

// Fire spawns a shot shifted left of the hull so the streak lines up under
// it. Cooldown rules are the same as for any combatant.
func (e *Enemy) Fire() bool {
	return e.fireAt(e.X - e.shotOffset)
}

// Bottom returns the y of the enemy's lower edge.
func (e *Enemy) Bottom() int {
	return e.Y + e.Height()
}
