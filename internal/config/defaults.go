package config

import (
	_ "embed"
)

//go:embed defaults/taxi.yaml
var defaultTaxiYAML []byte

//go:embed defaults/objects.csv
var defaultObjectsCSV []byte

//go:embed defaults/weather.csv
var defaultWeatherCSV []byte

// DefaultTaxiConfig returns the hard-coded taxi configuration.
// Keys missing from a YAML file keep these values.
func DefaultTaxiConfig() TaxiConfig {
	return TaxiConfig{
		Gameplay: GameplayConfig{
			Target:    500,
			MaxFrames: 15000,
		},
		World: WorldConfig{
			Width:  1024,
			Height: 768,
			Lanes:  []int{360, 480, 620},
			RoadL:  300,
			RoadR:  680,
		},
		Taxi: TaxiSpec{
			Radius:      30,
			Health:      100,
			Damage:      100,
			SpeedX:      2,
			SpeedY:      5,
			RespawnMinY: 200,
			RespawnMaxY: 400,
		},
		Driver: DriverSpec{
			Radius:          10,
			Health:          100,
			WalkSpeed:       2,
			TaxiGetInRadius: 10,
			EjectOffsetX:    -50,
			EjectOffsetY:    0,
		},
		Passenger: PassengerSpec{
			Radius:           10,
			WalkSpeed:        1,
			TaxiDetectRadius: 100,
			BoardRadius:      1,
		},
		Trip: TripConfig{
			BaseFare:      0,
			RatePerY:      0.1,
			PenaltyPerY:   0.05,
			PriorityRates: []float64{30, 20, 10},
			FlagRadius:    80,
		},
		Car: CarSpec{
			Radius:    30,
			Health:    100,
			Damage:    50,
			MinSpeedY: 2,
			MaxSpeedY: 5,
			SpawnYs:   []int{-50, 768},
		},
		EnemyCar: EnemyCarSpec{
			CarSpec: CarSpec{
				Radius:    30,
				Health:    100,
				Damage:    50,
				MinSpeedY: 2,
				MaxSpeedY: 5,
				SpawnYs:   []int{-50, 768},
			},
			ShootChance: 300,
		},
		Fireball: FireballSpec{
			Radius: 10,
			Damage: 20,
			SpeedY: 10,
		},
		Coin: PickupSpec{
			Radius:    20,
			MaxFrames: 500,
		},
		Power: PickupSpec{
			Radius:    20,
			MaxFrames: 1000,
		},
		Collision: CollisionConfig{
			LockoutTicks:         200,
			KnockbackTicks:       10,
			TaxiDamageMultiplier: 1.0,
		},
		Spawn: SpawnConfig{
			CarChance:      200,
			EnemyCarChance: 400,
			MinChance:      50,
		},
		Effects: EffectConfig{
			TTL: 20,
		},
		Input: InputConfig{
			HoldTicks: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 12000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "taxi":
		return defaultTaxiYAML
	default:
		return nil
	}
}
