package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-taxi/internal/platform/tui"
	"github.com/vovakirdan/tui-taxi/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. After a run ends, Esc returns to the menu.

Examples:
  taxi menu
  taxi menu --fps 30 --player alice
  taxi menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameSettings(); err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	cfg := runtimeConfig()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(s.store, cfg, player)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.CreateFor(menuResult.GameID, player, s.recorder)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Fresh seed per run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, s.options()); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
