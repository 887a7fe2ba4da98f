package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the shooter in the terminal. The field is scaled to fit the
window using half-block cells.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  Enter/Click  - Start from the menu
  Q/Esc        - Quit

Examples:
  shooter play
  shooter play --seed 42 --log shooter.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, runtime, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stderr is hidden behind the alt screen, so logs are discarded
	// unless --log names a file.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := game.Config()
	runErr := tui.Run(game, runtime, tui.Options{
		FieldWidth:  cfg.Field.Width,
		FieldHeight: cfg.Field.Height,
		Cols:        width,
		Rows:        height,
		Logger:      logger,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
