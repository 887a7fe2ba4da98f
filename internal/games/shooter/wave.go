package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
)

// Rand is the random source the simulation draws from.
// *math/rand.Rand satisfies it; tests script it.
type Rand interface {
	Intn(n int) int
}

// randRange returns a value in [lo, hi).
func randRange(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// WaveManager tracks the level and wave size, and is the only code path
// that creates enemies.
type WaveManager struct {
	Level  int
	Length int

	cfg config.ShooterConfig
	art *assets.Set
}

// NewWaveManager starts at level 0 with the initial wave length.
func NewWaveManager(cfg config.ShooterConfig, art *assets.Set) *WaveManager {
	return &WaveManager{
		Length: cfg.Wave.InitialLength,
		cfg:    cfg,
		art:    art,
	}
}

// Next advances to the next level, grows the wave, and spawns it above the
// field at staggered heights with random factions.
func (w *WaveManager) Next(rng Rand) []*Enemy {
	w.Level++
	w.Length += w.cfg.Wave.Increment

	enemies := make([]*Enemy, 0, w.Length)
	for range w.Length {
		x := randRange(rng, w.cfg.Enemy.SpawnMinX, w.cfg.SpawnMaxX())
		y := randRange(rng, w.cfg.Enemy.SpawnMinY, w.cfg.Enemy.SpawnMaxY)
		f := assets.Factions[rng.Intn(len(assets.Factions))]
		enemies = append(enemies, w.NewEnemy(x, y, f))
	}
	return enemies
}

// NewEnemy builds an enemy of faction f at (x, y).
func (w *WaveManager) NewEnemy(x, y int, f assets.Faction) *Enemy {
	pair := w.art.Faction(f)
	return &Enemy{
		Combatant:  newCombatant(x, y, w.cfg.Enemy.Health, w.cfg.Timing.Cooldown, pair.Ship, pair.Laser),
		Faction:    f,
		shotOffset: w.cfg.Enemy.ShotOffset,
	}
}
