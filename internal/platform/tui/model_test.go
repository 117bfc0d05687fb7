package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// fakeGame ends after a fixed number of steps and emits one event per step.
type fakeGame struct {
	steps   int
	endAt   int
	resets  int
	inputs  []core.InputFrame
	over    bool
	paused  bool
	saveErr error
}

func (g *fakeGame) SaveErr() error { return g.saveErr }

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.steps++
	if g.endAt > 0 && g.steps >= g.endAt {
		g.over = true
	}
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Kind: core.EventCoinCollected, Frame: g.steps}},
	}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE") }
func (g *fakeGame) State() core.GameState {
	return core.GameState{Earnings: 12.5, GameOver: g.over, Paused: g.paused}
}

type countingSink struct{ events []core.Event }

func (s *countingSink) HandleEvent(e core.Event) { s.events = append(s.events, e) }

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelForwardsInputOnce(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m)
	m = tick(m)

	if len(g.inputs) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionUp) || !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first tick should carry both keys")
	}
	if g.inputs[1].Has(core.ActionUp) {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelDispatchesEvents(t *testing.T) {
	g := &fakeGame{}
	sink := &countingSink{}
	m := NewModel(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Sinks: []EventSink{sink}})
	m.Init()

	for i := 0; i < 3; i++ {
		m = tick(m)
	}
	if len(sink.events) != 3 {
		t.Errorf("sink got %d events, expected 3", len(sink.events))
	}
}

func TestModelFinishesRunOnce(t *testing.T) {
	g := &fakeGame{endAt: 2, saveErr: errors.New("disk full")}
	var buf bytes.Buffer
	m := NewModel(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Player: "alice", Logger: log.New(&buf)})
	m.Init()

	for i := 0; i < 5; i++ {
		m = tick(m)
	}
	if n := strings.Count(buf.String(), "run finished"); n != 1 {
		t.Fatalf("run finished logged %d times, expected 1", n)
	}
	if !strings.Contains(buf.String(), "could not save score") {
		t.Error("score write failure should be logged")
	}

	// Restart starts a new run that finishes again
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(m)
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	for i := 0; i < 5; i++ {
		m = tick(m)
	}
	if n := strings.Count(buf.String(), "run finished"); n != 2 {
		t.Errorf("run finished logged %d times over two runs, expected 2", n)
	}
}

func TestModelBack(t *testing.T) {
	g := &fakeGame{endAt: 1}

	embedded := NewModel(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Embedded: true})
	embedded.Init()
	embedded = tick(embedded)
	embedded, cmd := press(embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.BackToMenu() || embedded.IsQuitting() || cmd != nil {
		t.Error("Back after game over should return to the menu")
	}

	standalone := NewModel(&fakeGame{endAt: 1}, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{})
	standalone.Init()
	standalone = tick(standalone)
	standalone, _ = press(standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if !standalone.IsQuitting() {
		t.Error("Back after game over should quit a standalone game")
	}
}

func TestModelEscPausesRunningGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Embedded: true})
	m.Init()

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m)
	if m.BackToMenu() {
		t.Error("Back during play should not leave the game")
	}
	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("Back during play should pause")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, TickRate: 60, Seed: 1}, Options{})
	if !strings.Contains(m.View(), "FAKE") {
		t.Error("View() should contain the rendered game")
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.DrawTextColor(0, 0, "ab", core.ColorRed)
	scr.DrawText(2, 0, "cd")
	scr.DrawText(0, 1, "efgh")

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "efgh"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}
