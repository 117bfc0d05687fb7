package config

import "math"

// DifficultyManager calculates dynamic traffic parameters from earnings or time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(earnings float64, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "earnings":
		progress = earnings / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval shortens a "one in N frames" spawn chance as difficulty rises.
// The result never drops below floor (or 1).
func (d *DifficultyManager) SpawnInterval(base, floor int, earnings float64, ticks int) int {
	level := d.Level(earnings, ticks)
	reduction := int(level * d.cfg.Scaling.SpawnReduction * float64(base))
	return max(base-reduction, floor, 1)
}

// Speed scales a traffic speed. Speeds never drop below the base.
func (d *DifficultyManager) Speed(base int, earnings float64, ticks int) int {
	level := d.Level(earnings, ticks)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
