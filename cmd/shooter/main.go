// shooter is a 2D arcade space shooter that runs in the terminal or in a
// desktop window.
//
// Usage:
//
//	shooter play      - Play in the terminal
//	shooter window    - Play in a desktop window
//	shooter config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Override the tick rate from the config
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a specific shooter.yaml
//	--log <path>     - Write the session log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - Defend against descending waves of enemy ships",
	Long: `Space Shooter is an arcade game: steer your ship, shoot down each wave
of enemies, and survive as the waves grow longer.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  shooter play
  shooter window --seed 42
  shooter play --config ./my-shooter.yaml --log shooter.log
  shooter config > ~/.shooter/configs/shooter.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log per-frame combat events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
