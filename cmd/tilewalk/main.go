// tilewalk is a tile-world walker for the terminal.
//
// Usage:
//
//	tilewalk list              - List available stages
//	tilewalk play <stage>      - Walk a stage
//	tilewalk menu              - Pick stages interactively
//	tilewalk serve             - Start SSH server for remote play
//	tilewalk scores <stage>    - Show best runs for a stage
//
// Global flags:
//
//	--fps <rate>     - Override the configured frame delay
//	--seed <value>   - World generation seed (0 = configured seed)
//	--db <path>      - Database path (default: ~/.tilewalk/scores.db)
//	--config <path>  - World config YAML
//	--map <path>     - Map file replacing generated worlds
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/games/tilewalk"
	"github.com/vovakirdan/tilewalk/internal/platform/tui"
	"github.com/vovakirdan/tilewalk/internal/world/maps"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagMap     string
	flagLogPath string
)

// Loaded by setup.
var (
	worldConfig config.WorldConfig
	customMap   *maps.Map
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilewalk",
	Short: "tilewalk - walk a tile world in your terminal",
	Long: `tilewalk renders a tile world in your terminal and lets you walk it.

Stages:
  walk     - Single screen, 20px tiles, no layers
  scroll   - 80x80 map bigger than the screen, camera follows
  world    - Same map plus a collision overlay of props

Available commands:
  list     - Show all stages
  play     - Walk a specific stage directly
  menu     - Interactive stage picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  tilewalk list
  tilewalk play world
  tilewalk play world --seed 7
  tilewalk play scroll --map ./maps/island.yaml
  tilewalk serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = configured frame delay)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World generation seed (0 = configured seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilewalk/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to a map file for the scroll and world stages")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fatal prints err and exits. Setup errors are never retried.
func fatal(format string, args ...any) {
	closeLog()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// setup loads the world config and map and installs the logger.
func setup() {
	cfg, err := config.LoadWorld(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	worldConfig = cfg
	tilewalk.SetConfig(cfg)

	if flagMap != "" {
		loader := maps.NewLoader(os.DirFS(filepath.Dir(flagMap)))
		m, err := loader.LoadFile(filepath.Base(flagMap))
		if err != nil {
			fatal("loading map %s: %v", flagMap, err)
		}
		customMap = &m
		tilewalk.SetMap(customMap)
	}

	if flagLogPath != "" {
		l, err := openLog(flagLogPath)
		if err != nil {
			fatal("%v", err)
		}
		tilewalk.SetLogger(l)
		tui.SetLogger(l)
	}
}

var logFile *os.File

// openLog writes debug logs to path so they stay off the alt screen.
func openLog(path string) (*log.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilewalk",
		Level:           log.DebugLevel,
	}), nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
