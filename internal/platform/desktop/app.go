// Package desktop runs a game in a native window using Ebitengine.
// Ebitengine calls Update at the configured tick rate, which gives the
// simulation its fixed frame clock.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/eventlog"
)

// Options configures the desktop shell.
type Options struct {
	FieldWidth  int
	FieldHeight int
	Logger      *log.Logger
}

// app implements ebiten.Game.
type app struct {
	game    core.Game
	surface *Surface
	logger  *log.Logger
	w, h    int
}

// Update advances the game by one tick.
func (a *app) Update() error {
	result := a.game.Step(readInput())
	eventlog.Write(a.logger, result.Events)
	if result.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (a *app) Draw(screen *ebiten.Image) {
	a.surface.begin(screen)
	a.game.Render(a.surface)
}

// Layout keeps the logical screen at the field size; Ebitengine scales it
// to the window.
func (a *app) Layout(_, _ int) (int, int) {
	return a.w, a.h
}

// Run opens a window sized to the field and blocks until the game quits or
// the window is closed.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	surface, err := NewSurface()
	if err != nil {
		return err
	}

	game.Reset(cfg)
	logger.Info("game ready", "game", game.ID(), "fps", cfg.TickRate, "seed", cfg.Seed)

	ebiten.SetWindowSize(opts.FieldWidth, opts.FieldHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(&app{
		game:    game,
		surface: surface,
		logger:  logger,
		w:       opts.FieldWidth,
		h:       opts.FieldHeight,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
