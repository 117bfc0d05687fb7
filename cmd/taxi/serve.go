package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-taxi/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Shadow Taxi SSH server",
	Long: `Start an SSH server that lets users connect and drive.

Each SSH connection gets its own session with the mode menu. Runs are
recorded under the SSH user name; all users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  taxi serve                           # Listen on :23234
  taxi serve --ssh :2222               # Listen on port 2222
  taxi serve --host-key ./my_host_key  # Use specific host key
  taxi serve --difficulty hard         # Same game flags as play

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom taxi.yaml")
	serveCmd.Flags().StringVar(&flagObjects, "objects", "", "Path to game objects CSV")
	serveCmd.Flags().StringVar(&flagWeather, "weather", "", "Path to weather CSV")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().StringVar(&flagScoresFile, "scores-file", "", "Also append \"player,earnings\" lines to this file")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applyGameSettings(); err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.ScoresFile = flagScoresFile
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Shadow Taxi SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
