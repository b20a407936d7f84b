package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/games/tilewalk"
	"github.com/vovakirdan/tilewalk/internal/platform/tui"
	"github.com/vovakirdan/tilewalk/internal/registry"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <stage>",
	Short: "Walk a stage",
	Long: `Start walking the specified stage.

Controls:
  Arrows/WASD/HJKL  - Move
  P                 - Pause
  I/F3              - Toggle debug overlay
  ?                 - Toggle full help
  Esc/Q/Ctrl+C      - Quit

Your score is the number of distinct tiles explored. It is saved when you quit.

Examples:
  tilewalk play walk
  tilewalk play world --seed 42
  tilewalk play world --fps 30
  tilewalk play scroll --map ./maps/island.yaml --log ./tilewalk.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, degrading to nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	stageID := args[0]

	if !registry.Exists(stageID) {
		fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", stageID)
		fmt.Fprintln(os.Stderr, "Run 'tilewalk list' to see available stages.")
		os.Exit(1)
	}

	setup()
	cfg := terminalConfig()

	// Build once up front so a bad world fails before the alt screen opens.
	if _, err := tilewalk.BuildWorld(worldConfig, stageID, customMap, cfg.Seed); err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(stageID)
	if err != nil {
		fatal("creating stage: %v", err)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running stage: %v", runErr)
	}
}
