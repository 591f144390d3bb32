// sandfall is an interactive falling-sand toy for the terminal.
//
// Usage:
//
//	sandfall                 - Paint sand in the current terminal
//	sandfall play            - Same, with --config for a custom YAML
//	sandfall serve           - Start SSH server for remote play
//	sandfall sessions        - Browse past play sessions
//	sandfall config          - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Override the simulation tick rate
//	--seed <value>  - Set RNG seed for reproducible grain colors
//	--db <path>     - Set database path (default: ~/.sandfall/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandfall",
	Short: "Sandfall - Paint falling sand in your terminal",
	Long: `Sandfall is a terminal falling-sand toy. Drag the mouse to pour
sand; grains tumble and pile up under a simple gravity rule.

Available commands:
  play      - Start painting in the current terminal
  serve     - Start SSH server for remote play
  sessions  - Browse past play sessions
  config    - Print the default configuration YAML

Examples:
  sandfall
  sandfall play --fps 30 --seed 42
  sandfall serve --ssh :2222
  sandfall sessions`,
	// Bare "sandfall" starts painting
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sandfall/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}
