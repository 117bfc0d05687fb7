package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-taxi/internal/core"
	"github.com/vovakirdan/tui-taxi/internal/registry"
)

// Options wires a game model to its surroundings.
type Options struct {
	// Player is the name recorded with scores.
	Player string
	// Recorder is bound to games created for this session; they write their own scores.
	Recorder core.ScoreRecorder
	// Logger gets lifecycle messages; nil disables logging.
	Logger *log.Logger
	// Sinks receive every game event, e.g. sound effects.
	Sinks []EventSink
	// Embedded models return to the menu instead of quitting on Back.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	sinks      []EventSink
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sinks := opts.Sinks
	if opts.Logger != nil {
		sinks = append([]EventSink{LogSink{Logger: opts.Logger, GameID: game.ID()}}, sinks...)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		sinks:      sinks,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logf("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		// Back leaves a finished or paused run; otherwise it pauses.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.opts.Embedded {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is fixed-size, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Restart with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logf("run restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	dispatch(m.sinks, result.Events)

	if m.gameState.GameOver && !wasOver {
		m.finishRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun logs the result and any score write failure the game reports.
func (m *Model) finishRun() {
	m.logf("run finished", "game", m.game.ID(), "player", m.opts.Player,
		"earnings", m.gameState.Earnings, "won", m.gameState.Won)

	se, ok := m.game.(interface{ SaveErr() error })
	if !ok || m.opts.Logger == nil {
		return
	}
	if err := se.SaveErr(); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

func (m Model) logf(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info(msg, keyvals...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
