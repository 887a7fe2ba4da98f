package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// loadConfig resolves the shooter config and applies flag overrides.
func loadConfig() (config.ShooterConfig, string, error) {
	cfg, source, err := config.LoadShooterFrom(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, source, nil
}

// newGame builds the shooter and its runtime config from the flags.
func newGame() (*shooter.Game, core.RuntimeConfig, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, core.RuntimeConfig{}, err
	}
	art := assets.Build(cfg.Field.Width, cfg.Field.Height)
	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Timing.FPS
	runtime.Seed = flagSeed
	return shooter.New(cfg, art), runtime, nil
}

// openLogger returns a logger writing to the --log file, or to fallback
// when no file was given. The returned close func is always safe to call.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
