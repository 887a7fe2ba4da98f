package shooter

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick  uint64
	Phase int

	Level      int
	WaveLength int
	Lives      int
	Lost       bool
	LostCount  int

	PlayerX        int
	PlayerY        int
	PlayerHealth   int
	PlayerCooldown int
	// Player shots (each shot is 2 ints: X, Y)
	PlayerShots []int

	// Enemies (each enemy is 6 ints: X, Y, Health, Faction, Cooldown, ShotCount)
	EnemyCount int
	EnemyData  []int
	// Enemy shots in enemy order (each shot is 2 ints: X, Y)
	EnemyShots []int
}

// Snapshot returns the current state. In the menu only Tick and Phase are set.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Phase: int(g.phase)}
	s := g.session
	if s == nil {
		return snap
	}

	snap.Level = s.Level()
	snap.WaveLength = s.WaveLength()
	snap.Lives = s.Lives
	snap.Lost = s.Lost
	snap.LostCount = s.LostCount

	p := s.Player
	snap.PlayerX, snap.PlayerY = p.X, p.Y
	snap.PlayerHealth = p.Health
	snap.PlayerCooldown = p.Cooldown()
	snap.PlayerShots = flattenShots(nil, p.Projectiles)

	snap.EnemyCount = len(s.Enemies)
	snap.EnemyData = make([]int, 0, len(s.Enemies)*6)
	for _, e := range s.Enemies {
		snap.EnemyData = append(snap.EnemyData,
			e.X, e.Y, e.Health, int(e.Faction), e.Cooldown(), len(e.Projectiles))
		snap.EnemyShots = flattenShots(snap.EnemyShots, e.Projectiles)
	}
	return snap
}

func flattenShots(dst []int, shots []*Projectile) []int {
	for _, p := range shots {
		dst = append(dst, p.X, p.Y)
	}
	return dst
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Level, snap.WaveLength, snap.Lives, snap.LostCount,
		snap.PlayerX, snap.PlayerY, snap.PlayerHealth, snap.PlayerCooldown, snap.EnemyCount,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Lost {
		h = h*31 + 1
	}
	for _, data := range [][]int{snap.PlayerShots, snap.EnemyData, snap.EnemyShots} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
