package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/sprite"
)

// Session is one play-through from the menu until the loss screen times out.
// It owns every entity; nothing outside the session mutates them.
type Session struct {
	Player  *Player
	Enemies []*Enemy
	Lives   int

	Lost      bool
	LostCount int // frames since the loss was detected, including that frame

	waves *WaveManager
	cfg   config.ShooterConfig
	rng   Rand
}

// NewSession places the player at its start position with full health.
// No enemies exist until the first frame runs.
func NewSession(cfg config.ShooterConfig, art *assets.Set, rng Rand) *Session {
	return &Session{
		Player: &Player{
			Combatant: newCombatant(cfg.Player.StartX, cfg.Player.StartY,
				cfg.Player.Health, cfg.Timing.Cooldown, art.Player, art.PlayerLaser),
		},
		Lives: cfg.Player.Lives,
		waves: NewWaveManager(cfg, art),
		cfg:   cfg,
		rng:   rng,
	}
}

// Level returns the current level.
func (s *Session) Level() int { return s.waves.Level }

// WaveLength returns the size of the latest wave.
func (s *Session) WaveLength() int { return s.waves.Length }

// Waves exposes the wave manager.
func (s *Session) Waves() *WaveManager { return s.waves }

// Step runs one frame of gameplay and reports what happened. done is true
// once the loss dwell has elapsed and the session should end.
func (s *Session) Step(in core.InputFrame) (events []core.Event, done bool) {
	emit := func(kind core.EventKind, value int) {
		events = append(events, core.Event{Kind: kind, Level: s.Level(), Value: value})
	}

	// Loss check
	if s.Lives <= 0 || s.Player.Dead() {
		if !s.Lost {
			emit(core.EventSessionLost, s.Level())
		}
		s.Lost = true
		s.LostCount++
	}
	if s.Lost {
		return events, s.LostCount > s.cfg.LossDwellFrames()
	}

	if len(s.Enemies) == 0 {
		s.Enemies = s.waves.Next(s.rng)
		emit(core.EventWaveStarted, len(s.Enemies))
	}

	s.movePlayer(in)
	s.Player.TickCooldown()
	if in.Has(core.ActionFire) {
		s.Player.Fire()
	}

	damage := s.cfg.Projectile.Damage
	laserVel := s.cfg.Projectile.Velocity
	fieldH := s.cfg.Field.Height

	alive := make([]*Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		e.Descend(s.cfg.Enemy.Velocity)
		e.TickCooldown()
		if hits := e.AdvanceProjectiles(laserVel, fieldH, damage, s.Player); hits > 0 {
			emit(core.EventPlayerHit, s.Player.Health)
		}
		if s.rng.Intn(s.cfg.Enemy.FireOneIn) == 0 {
			e.Fire()
		}

		switch {
		case sprite.Overlaps(e, s.Player):
			s.Player.Hit(damage)
			emit(core.EventPlayerHit, s.Player.Health)
		case e.Bottom() > fieldH:
			s.Lives--
			emit(core.EventLifeLost, s.Lives)
		default:
			alive = append(alive, e)
		}
	}
	s.Enemies = alive

	var destroyed int
	s.Enemies, destroyed = s.Player.AdvanceProjectiles(-laserVel, fieldH, damage, s.Enemies)
	for range destroyed {
		emit(core.EventEnemyDestroyed, len(s.Enemies))
	}
	return events, false
}

// movePlayer applies held directions. Each axis moves only if the ship,
// plus the healthbar margin below it, stays inside the field.
func (s *Session) movePlayer(in core.InputFrame) {
	p := s.Player
	vel := s.cfg.Player.Velocity
	w, h := s.cfg.Field.Width, s.cfg.Field.Height

	if in.Has(core.ActionLeft) && p.X-vel > 0 {
		p.X -= vel
	}
	if in.Has(core.ActionRight) && p.X+vel+p.Width() < w {
		p.X += vel
	}
	if in.Has(core.ActionUp) && p.Y-vel > 0 {
		p.Y -= vel
	}
	if in.Has(core.ActionDown) && p.Y+vel+p.Height()+s.cfg.Player.HealthbarMargin < h {
		p.Y += vel
	}
}
