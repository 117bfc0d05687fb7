package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:     ScalingConfig{SpawnReduction: 0.5, SpeedMultiplier: 1.0},
	})

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.0},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(0, tc.ticks); got != tc.expected {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}

	if got := dm.SpawnInterval(200, 50, 0, 1000); got != 100 {
		t.Errorf("SpawnInterval() at max level = %d, expected 100", got)
	}
	if got := dm.SpawnInterval(80, 50, 0, 1000); got != 50 {
		t.Errorf("SpawnInterval() = %d, expected floor 50", got)
	}
	if got := dm.Speed(4, 0, 1000); got != 8 {
		t.Errorf("Speed() = %d, expected 8", got)
	}
}

func TestDifficultyEarningsProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "earnings", MaxAt: 100},
	})
	if got := dm.Level(50, 0); got != 0.75 {
		t.Errorf("Level(50, 0) = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})
	if dm.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := dm.Level(999, 999); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}
