package config

import (
	"errors"
	"fmt"
)

// Validate reports the first structurally invalid value in the config.
func (c TaxiConfig) Validate() error {
	if c.Gameplay.MaxFrames <= 0 {
		return errors.New("config: gameplay.max_frames must be positive")
	}
	if c.Gameplay.Target < 0 {
		return errors.New("config: gameplay.target must not be negative")
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size %dx%d must be positive", c.World.Width, c.World.Height)
	}
	if len(c.World.Lanes) == 0 {
		return errors.New("config: world.lanes must not be empty")
	}
	if c.World.RoadL >= c.World.RoadR {
		return fmt.Errorf("config: world.road_left %d must be left of road_right %d", c.World.RoadL, c.World.RoadR)
	}

	radii := map[string]float64{
		"taxi.radius":             c.Taxi.Radius,
		"driver.radius":           c.Driver.Radius,
		"passenger.radius":        c.Passenger.Radius,
		"car.radius":              c.Car.Radius,
		"enemy_car.radius":        c.EnemyCar.Radius,
		"fireball.radius":         c.Fireball.Radius,
		"coin.radius":             c.Coin.Radius,
		"invincible_power.radius": c.Power.Radius,
	}
	for name, r := range radii {
		if r <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", name, r)
		}
	}

	healths := map[string]float64{
		"taxi.health":      c.Taxi.Health,
		"driver.health":    c.Driver.Health,
		"car.health":       c.Car.Health,
		"enemy_car.health": c.EnemyCar.Health,
	}
	for name, h := range healths {
		if h <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", name, h)
		}
	}

	if c.Taxi.RespawnMinY > c.Taxi.RespawnMaxY {
		return fmt.Errorf("config: taxi.respawn_min_y %d exceeds respawn_max_y %d", c.Taxi.RespawnMinY, c.Taxi.RespawnMaxY)
	}
	if err := c.Car.validate("car"); err != nil {
		return err
	}
	if err := c.EnemyCar.validate("enemy_car"); err != nil {
		return err
	}
	if c.EnemyCar.ShootChance <= 0 {
		return errors.New("config: enemy_car.shoot_chance must be positive")
	}

	if len(c.Trip.PriorityRates) == 0 {
		return errors.New("config: trip.priority_rates must not be empty")
	}
	if c.Trip.RatePerY < 0 || c.Trip.PenaltyPerY < 0 {
		return errors.New("config: trip rates must not be negative")
	}

	if c.Collision.KnockbackTicks <= 0 {
		return errors.New("config: collision.knockback_ticks must be positive")
	}
	if c.Collision.LockoutTicks <= c.Collision.KnockbackTicks {
		return fmt.Errorf("config: collision.lockout_ticks %d must exceed knockback_ticks %d",
			c.Collision.LockoutTicks, c.Collision.KnockbackTicks)
	}
	if c.Collision.TaxiDamageMultiplier < 0 {
		return errors.New("config: collision.taxi_damage_multiplier must not be negative")
	}

	if c.Spawn.CarChance <= 0 || c.Spawn.EnemyCarChance <= 0 || c.Spawn.MinChance <= 0 {
		return errors.New("config: spawn chances must be positive")
	}
	return nil
}

func (s CarSpec) validate(name string) error {
	if s.MinSpeedY <= 0 || s.MinSpeedY > s.MaxSpeedY {
		return fmt.Errorf("config: %s speed range [%d, %d] is invalid", name, s.MinSpeedY, s.MaxSpeedY)
	}
	if len(s.SpawnYs) == 0 {
		return fmt.Errorf("config: %s.spawn_ys must not be empty", name)
	}
	return nil
}
