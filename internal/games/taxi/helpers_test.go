package taxi

import (
	"testing"

	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
)

// memRecorder keeps score writes in memory.
type memRecorder struct {
	records []core.ScoreRecord
}

func (m *memRecorder) RecordScore(rec core.ScoreRecord) error {
	m.records = append(m.records, rec)
	return nil
}

// quietConfig is the default config with traffic and gunfire switched off
// and single-tick key holds, so tests control every entity.
func quietConfig() config.TaxiConfig {
	cfg := config.DefaultTaxiConfig()
	cfg.Input.HoldTicks = 1
	cfg.Spawn.CarChance = 1 << 30
	cfg.Spawn.EnemyCarChance = 1 << 30
	cfg.Spawn.MinChance = 1 << 30
	cfg.EnemyCar.ShootChance = 1 << 30
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(t *testing.T, mode Mode, cfg config.TaxiConfig, objs config.GameObjects) (*Game, *memRecorder) {
	t.Helper()
	g := NewWithConfig(mode, cfg, objs, nil)
	rec := &memRecorder{}
	g.SetScoreRecorder(rec)
	g.SetPlayer("tester")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, rec
}

func emptyLevel() config.GameObjects {
	return config.GameObjects{Taxi: config.Position{X: 480, Y: 500}}
}

func completedTrip(fee, penalty float64) *Trip {
	return &Trip{
		Passenger: &Passenger{State: PassengerDelivered},
		State:     TripComplete,
		Fee:       fee,
		Penalty:   penalty,
	}
}

func step(g *Game, n int, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(core.FrameOf(actions...))
	}
	return res
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
