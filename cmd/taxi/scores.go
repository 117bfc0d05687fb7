package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-taxi/internal/registry"
	"github.com/vovakirdan/tui-taxi/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs for a mode (default: taxi), or the recent
runs of one player with --player.

Examples:
  taxi scores
  taxi scores taxi_endless --limit 20
  taxi scores --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show one player's recent runs instead")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "taxi"
	if len(args) == 1 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresPlayer != "" {
		entries, err := store.PlayerScores(flagScoresPlayer, flagScoresLimit)
		if err != nil {
			return err
		}
		fmt.Printf("Recent runs - %s\n\n", flagScoresPlayer)
		printEntries(entries, true)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown mode %q (run 'taxi list' to see the modes)", gameID)
	}

	entries, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Top fares - %s\n\n", game.Title())
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'taxi play %s' to set the first record!\n", gameID)
		return nil
	}
	printEntries(entries, false)

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: $%.2f  Average: $%.2f\n",
			stats.GamesCount, stats.Wins, stats.BestEarnings, stats.AvgEarnings)
	}
	return nil
}

func printEntries(entries []storage.ScoreEntry, withMode bool) {
	fmt.Printf("  %-4s  %-16s  %-10s  %-4s  %s\n", "Rank", "Driver", "Earnings", "Won", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %-4s  %s\n", "----", "------", "--------", "---", "----")
	for i, e := range entries {
		won := ""
		if e.Won {
			won = "yes"
		}
		line := fmt.Sprintf("  %-4d  %-16s  %-10s  %-4s  %s",
			i+1, e.Player, fmt.Sprintf("$%.2f", e.Earnings), won, e.CreatedAt.Local().Format("2006-01-02 15:04"))
		if withMode {
			line += "  " + e.GameID
		}
		fmt.Println(line)
	}
}
