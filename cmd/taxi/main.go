// taxi is Shadow Taxi, a terminal driving game: carry passengers up a
// scrolling road for fares while dodging traffic and enemy fire.
//
// Usage:
//
//	taxi list              - List game modes
//	taxi play [mode]       - Drive a shift (default mode: taxi)
//	taxi menu              - Pick a mode interactively
//	taxi serve             - Start SSH server for remote play
//	taxi scores [mode]     - Show the best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes
	_ "github.com/vovakirdan/tui-taxi/internal/games/taxi"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "taxi",
	Short:         "Shadow Taxi - drive passengers up the road for fares",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Shadow Taxi is a terminal driving game. Steer your taxi up a scrolling
road, stop next to passengers, drop them at their flag and collect the fare.
Crashes cost health; lose the taxi and you walk to a replacement.

Available commands:
  list     - Show the game modes
  play     - Drive a shift directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  taxi play
  taxi play taxi_endless --difficulty hard
  taxi menu --player alice
  taxi serve --ssh :2222
  taxi scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
