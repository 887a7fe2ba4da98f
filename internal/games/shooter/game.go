// Package shooter implements the space shooter: a player ship defending
// against escalating waves of descending enemies. The simulation is
// frame-stepped and pure; shells feed it input and present what it draws.
package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Game drives the MENU -> PLAYING -> LOST -> MENU loop.
type Game struct {
	cfg config.ShooterConfig
	art *assets.Set

	runtime core.RuntimeConfig
	rng     Rand
	phase   core.Phase
	session *Session
	last    *Session // most recent finished session, for State()
	tick    uint64
}

// New creates a game with the given configuration and sprites.
func New(cfg config.ShooterConfig, art *assets.Set) *Game {
	return &Game{cfg: cfg, art: art}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "shooter" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Space Shooter" }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.ShooterConfig { return g.cfg }

// Reset returns to the menu and reseeds the random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.phase = core.PhaseMenu
	g.session = nil
	g.last = nil
	g.tick = 0
}

// SetRand replaces the random source used by sessions started afterwards.
func (g *Game) SetRand(rng Rand) {
	g.rng = rng
}

// Session returns the running session, or nil in the menu.
func (g *Game) Session() *Session { return g.session }

// Phase returns the current phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Step advances one frame. A quit action ends the process from any phase.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.rng == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	var events []core.Event
	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionConfirm) {
			g.session = NewSession(g.cfg, g.art, g.rng)
			g.phase = core.PhasePlaying
			events = append(events, core.Event{Kind: core.EventSessionStarted})
		}

	case core.PhasePlaying, core.PhaseLost:
		stepEvents, done := g.session.Step(in)
		events = append(events, stepEvents...)
		switch {
		case done:
			events = append(events, core.Event{
				Kind:  core.EventSessionEnded,
				Level: g.session.Level(),
				Value: g.session.Level(),
			})
			g.last = g.session
			g.session = nil
			g.phase = core.PhaseMenu
		case g.session.Lost:
			g.phase = core.PhaseLost
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Phase: g.phase, GameOver: g.phase == core.PhaseLost}
	s := g.session
	if s == nil {
		s = g.last
	}
	if s != nil {
		st.Score = s.Level()
		st.Lives = s.Lives
		st.Health = s.Player.Health
	}
	return st
}
