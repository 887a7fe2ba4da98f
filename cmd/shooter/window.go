package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window sized to the field and play at the configured tick rate.

Controls:
  WASD/Arrows  - Move
  Space        - Fire
  Click/Enter  - Start from the menu
  Esc          - Quit (closing the window also quits)

Examples:
  shooter window
  shooter window --fps 30 --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	game, runtime, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := game.Config()
	runErr := desktop.Run(game, runtime, desktop.Options{
		FieldWidth:  cfg.Field.Width,
		FieldHeight: cfg.Field.Height,
		Logger:      logger,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
