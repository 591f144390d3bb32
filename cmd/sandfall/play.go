package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sandfall/internal/config"
	"sandfall/internal/platform/tui"
	"sandfall/internal/sand"
	"sandfall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Paint sand in the current terminal",
	Long: `Start the falling-sand canvas sized to the current terminal.

Controls:
  Mouse drag - Pour sand
  P/Space    - Pause
  R/C        - Clear the canvas
  Q/Ctrl+C   - Quit

Examples:
  sandfall play
  sandfall play --fps 30
  sandfall play --seed 42
  sandfall play --config ./my-sand.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	sc, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size determines the canvas
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := tui.BuildRuntime(sc, width, height, flagFPS, flagSeed)
	game := sand.New(tui.BuildPalette(sc))

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the toy still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running sandfall: %v\n", runErr)
		os.Exit(1)
	}
}
