package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey() = %v, %v, expected %v, %v", action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionLeft) {
		t.Error("frame should hold every mapped key of the tick")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
