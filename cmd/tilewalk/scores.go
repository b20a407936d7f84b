package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/registry"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show best runs for a stage",
	Long: `Display the best runs for the specified stage, ranked by tiles explored
and then by fewest frames. Without a stage, shows a summary of every stage.

Examples:
  tilewalk scores
  tilewalk scores world
  tilewalk scores walk --limit 3
  tilewalk scores scroll --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the stage")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'tilewalk list' to see available stages.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	stageID := args[0]
	if flagScoresClear {
		if err := store.ClearScores(stageID); err != nil {
			store.Close()
			fatal("clearing runs: %v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", stageID)
		return
	}

	printStage(store, stageID)
}

func printStage(store *storage.Store, stageID string) {
	scores, err := store.TopScores(stageID, flagScoresLimit)
	if err != nil {
		store.Close()
		fatal("retrieving runs: %v", err)
	}

	title := stageID
	if game, err := registry.Create(stageID); err == nil {
		title = game.Title()
	}
	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Walk 'tilewalk play %s' to set the first record!\n", stageID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Explored", "Frames", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "--------", "------", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8d  %-10d  %s\n",
			i+1, entry.Score, entry.Frames, entry.Seed, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(stageID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Frames: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalFrames)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		store.Close()
		fatal("retrieving stats: %v", err)
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "Stage", "Runs", "Best", "Avg", "Last played")
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "-----", "----", "----", "---", "-----------")
	for _, s := range registry.List() {
		stats, ok := all[s.ID]
		if !ok {
			fmt.Printf("  %-8s  %-6d  %-6s  %-8s  %s\n", s.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-8.1f  %s\n",
			s.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
