// Package config defines the YAML configuration of the taxi game, its embedded
// defaults and the loaders for the game-objects and weather files.
package config

// TaxiConfig holds every tunable of a taxi run.
type TaxiConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	World      WorldConfig      `yaml:"world"`
	Taxi       TaxiSpec         `yaml:"taxi"`
	Driver     DriverSpec       `yaml:"driver"`
	Passenger  PassengerSpec    `yaml:"passenger"`
	Trip       TripConfig       `yaml:"trip"`
	Car        CarSpec          `yaml:"car"`
	EnemyCar   EnemyCarSpec     `yaml:"enemy_car"`
	Fireball   FireballSpec     `yaml:"fireball"`
	Coin       PickupSpec       `yaml:"coin"`
	Power      PickupSpec       `yaml:"invincible_power"`
	Collision  CollisionConfig  `yaml:"collision"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Effects    EffectConfig     `yaml:"effects"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig defines the win and loss conditions.
type GameplayConfig struct {
	Target    float64 `yaml:"target"`     // Earnings needed to complete the level, 0 = endless
	MaxFrames int     `yaml:"max_frames"` // Frame budget of a run
}

// WorldConfig describes the virtual road in pixels.
type WorldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Lanes  []int `yaml:"lanes"` // Lane center x positions
	RoadL  int   `yaml:"road_left"`
	RoadR  int   `yaml:"road_right"`
}

// TaxiSpec defines the player's taxi.
type TaxiSpec struct {
	Radius      float64 `yaml:"radius"`
	Health      float64 `yaml:"health"`
	Damage      float64 `yaml:"damage"`
	SpeedX      int     `yaml:"speed_x"`
	SpeedY      int     `yaml:"speed_y"` // World scroll speed while driving
	RespawnMinY int     `yaml:"respawn_min_y"`
	RespawnMaxY int     `yaml:"respawn_max_y"`
}

// DriverSpec defines the driver when on foot.
type DriverSpec struct {
	Radius          float64 `yaml:"radius"`
	Health          float64 `yaml:"health"`
	WalkSpeed       int     `yaml:"walk_speed"`
	TaxiGetInRadius float64 `yaml:"taxi_get_in_radius"`
	EjectOffsetX    int     `yaml:"eject_offset_x"`
	EjectOffsetY    int     `yaml:"eject_offset_y"`
}

// PassengerSpec defines waiting passengers.
type PassengerSpec struct {
	Radius           float64 `yaml:"radius"`
	WalkSpeed        int     `yaml:"walk_speed"`
	TaxiDetectRadius float64 `yaml:"taxi_detect_radius"`
	BoardRadius      float64 `yaml:"board_radius"`
}

// TripConfig defines the fee model.
type TripConfig struct {
	BaseFare      float64   `yaml:"base_fare"`
	RatePerY      float64   `yaml:"rate_per_y"`
	PenaltyPerY   float64   `yaml:"penalty_per_y"`
	PriorityRates []float64 `yaml:"priority_rates"` // Index 0 is priority 1
	FlagRadius    float64   `yaml:"flag_radius"`
}

// CarSpec defines a traffic car.
type CarSpec struct {
	Radius    float64 `yaml:"radius"`
	Health    float64 `yaml:"health"`
	Damage    float64 `yaml:"damage"`
	MinSpeedY int     `yaml:"min_speed_y"`
	MaxSpeedY int     `yaml:"max_speed_y"`
	SpawnYs   []int   `yaml:"spawn_ys"` // Candidate entry rows (above and below the screen)
}

// EnemyCarSpec is a car that shoots fireballs.
type EnemyCarSpec struct {
	CarSpec     `yaml:",inline"`
	ShootChance int `yaml:"shoot_chance"` // One in N frames
}

// FireballSpec defines enemy projectiles.
type FireballSpec struct {
	Radius float64 `yaml:"radius"`
	Damage float64 `yaml:"damage"`
	SpeedY int     `yaml:"speed_y"`
}

// PickupSpec defines a collectable power.
type PickupSpec struct {
	Radius    float64 `yaml:"radius"`
	MaxFrames int     `yaml:"max_frames"` // How long the effect lasts
}

// CollisionConfig defines the collision model.
type CollisionConfig struct {
	LockoutTicks         int     `yaml:"lockout_ticks"`
	KnockbackTicks       int     `yaml:"knockback_ticks"`
	TaxiDamageMultiplier float64 `yaml:"taxi_damage_multiplier"`
}

// SpawnConfig defines random traffic spawning.
type SpawnConfig struct {
	CarChance      int `yaml:"car_chance"`       // One in N frames
	EnemyCarChance int `yaml:"enemy_car_chance"` // One in N frames
	MinChance      int `yaml:"min_chance"`       // Floor for difficulty scaling
}

// EffectConfig defines the smoke and fire effects.
type EffectConfig struct {
	TTL int `yaml:"ttl"`
}

// InputConfig defines input handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Frames a key stays held after its last repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "earnings", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Earnings/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to traffic speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction removed from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// PriorityRate returns the fee bonus for a priority (1 is highest).
// Out-of-range priorities use the nearest configured rate.
func (t TripConfig) PriorityRate(priority int) float64 {
	if len(t.PriorityRates) == 0 {
		return 0
	}
	i := max(0, min(priority-1, len(t.PriorityRates)-1))
	return t.PriorityRates[i]
}
