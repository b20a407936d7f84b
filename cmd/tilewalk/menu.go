package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/platform/tui"
	"github.com/vovakirdan/tilewalk/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick stages from an interactive menu",
	Long: `Start tilewalk in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to walk a stage.
Leaving a stage returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select stage
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tilewalk menu
  tilewalk menu --fps 30
  tilewalk menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	setup()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit || (result.GameID == "" && !result.WantsScoreboard) {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating stage: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running stage: %v\n", err)
		}
	}
}
