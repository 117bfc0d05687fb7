package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-taxi/internal/platform/tui"
	"github.com/vovakirdan/tui-taxi/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Drive a shift",
	Long: `Start driving in the given mode (default: taxi).

Controls:
  Left/Right, A/D  - Steer (walk when on foot)
  Up, W            - Drive up the road
  Down, S          - Walk down (on foot)
  P/Space          - Pause
  Esc              - Pause, or leave a finished run
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Stop next to a waiting passenger to pick them up, then stop at their
flag to collect the fare. Driving past the flag costs a penalty.

Difficulty options:
  easy   - Longer shift, softer damage
  normal - Config defaults
  hard   - Shorter shift, enemy cars fire more often
  fixed  - No traffic scaling over time

Examples:
  taxi play
  taxi play taxi_endless
  taxi play --difficulty hard --sound
  taxi play --objects ./level2.csv --weather ./storm.csv
  taxi play --scores-file ./scores.csv --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "taxi"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'taxi list' to see the modes)", gameID)
	}

	if err := applyGameSettings(); err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	game, err := registry.CreateFor(gameID, playerName(), s.recorder)
	if err != nil {
		return err
	}

	if err := tui.Run(game, runtimeConfig(), s.options()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
