package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-taxi/internal/audio"
	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
	"github.com/vovakirdan/tui-taxi/internal/games/taxi"
	"github.com/vovakirdan/tui-taxi/internal/platform/tui"
	"github.com/vovakirdan/tui-taxi/internal/storage"
)

// Flags shared by play and menu
var (
	flagConfig     string
	flagObjects    string
	flagWeather    string
	flagDifficulty string
	flagPlayer     string
	flagScoresFile string
	flagSound      bool
	flagVolume     float64
	flagLogPath    string
	flagDebug      bool
)

// addGameFlags registers the flags that shape a run.
func addGameFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to custom taxi.yaml")
	f.StringVar(&flagObjects, "objects", "", "Path to game objects CSV (default: built-in level)")
	f.StringVar(&flagWeather, "weather", "", "Path to weather CSV (default: built-in schedule)")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagPlayer, "player", "", "Player name recorded with scores (default: current user)")
	f.StringVar(&flagScoresFile, "scores-file", "", "Also append \"player,earnings\" lines to this file")
	f.BoolVar(&flagSound, "sound", false, "Play sound effects")
	f.Float64Var(&flagVolume, "volume", 0.6, "Sound volume 0..1")
	f.StringVar(&flagLogPath, "log", "~/.arcade/taxi.log", "Log file path (empty disables logging)")
	f.BoolVar(&flagDebug, "debug", false, "Log every game event")
}

// applyGameSettings checks the game files and hands them to the taxi package.
// Broken files fail here, before the terminal is taken over.
func applyGameSettings() error {
	switch flagDifficulty {
	case "", "easy", "normal", "hard", "fixed":
	default:
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	if _, err := config.LoadTaxi(flagConfig); err != nil {
		return err
	}
	if _, err := config.LoadGameObjects(flagObjects); err != nil {
		return err
	}
	if _, err := config.LoadWeather(flagWeather); err != nil {
		return err
	}

	taxi.SetConfigPath(flagConfig)
	taxi.SetObjectsPath(flagObjects)
	taxi.SetWeatherPath(flagWeather)
	taxi.SetDifficultyPreset(flagDifficulty)
	taxi.SetPlayerName(playerName())
	return nil
}

// playerName returns --player, else the OS user name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// newLogger opens the log file. The TUI owns stdout, so logs never go there.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	path, err := storage.ExpandHome(flagLogPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "taxi",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// session holds what a local run needs besides the game itself.
type session struct {
	store    *storage.Store
	recorder core.ScoreRecorder
	logger   *log.Logger
	sinks    []tui.EventSink
	closers  []func()
}

// openSession opens storage, logging and sound. Only the logger is fatal;
// a missing database or speaker just disables that feature.
func openSession() (*session, error) {
	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, closers: []func(){closeLog}}

	var recorders storage.MultiRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
	} else {
		s.store = store
		recorders = append(recorders, store)
		s.closers = append(s.closers, func() { store.Close() })
	}

	if flagScoresFile != "" {
		f, ferr := storage.NewScoreFile(flagScoresFile)
		if ferr != nil {
			s.close()
			return nil, ferr
		}
		recorders = append(recorders, f)
	}
	s.recorder = recorders
	taxi.SetScoreRecorder(recorders)

	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Open(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			s.sinks = append(s.sinks, player)
			s.closers = append(s.closers, player.Close)
		}
	}

	return s, nil
}

func (s *session) options() tui.Options {
	return tui.Options{
		Player:   playerName(),
		Recorder: s.recorder,
		Logger:   s.logger,
		Sinks:    s.sinks,
	}
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
