package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// EventSink receives the events a game emits each tick.
type EventSink interface {
	HandleEvent(e core.Event)
}

// LogSink writes game events to a structured logger at debug level.
type LogSink struct {
	Logger *log.Logger
	GameID string
}

// HandleEvent implements EventSink.
func (s LogSink) HandleEvent(e core.Event) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug(e.Kind.String(),
		"game", s.GameID,
		"frame", e.Frame,
		"x", e.At.X,
		"y", e.At.Y,
		"amount", e.Amount,
	)
}

// dispatch hands every event to every sink.
func dispatch(sinks []EventSink, events []core.Event) {
	for _, e := range events {
		for _, s := range sinks {
			s.HandleEvent(e)
		}
	}
}
