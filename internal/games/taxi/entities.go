package taxi

import (
	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
)

// Taxi is a player taxi. Only one taxi is controlled at a time.
type Taxi struct {
	Body
	Trips  *TripLog
	Moving bool // Driven this frame
}

func newTaxi(pos core.Point, spec config.TaxiSpec, trips *TripLog) *Taxi {
	return &Taxi{
		Body:  newBody(KindTaxi, pos, spec.Radius, spec.Health, spec.Damage),
		Trips: trips,
	}
}

// Driver is the player character. On foot it walks; in a taxi it rides along.
type Driver struct {
	Body
	InTaxi bool
}

// Car is a traffic car. Enemy cars share the type with KindEnemyCar.
type Car struct {
	Body
	SpeedY int
}

func newCar(kind Kind, pos core.Point, spec config.CarSpec, speed int) *Car {
	return &Car{
		Body:   newBody(kind, pos, spec.Radius, spec.Health, spec.Damage),
		SpeedY: speed,
	}
}

// move advances the car one frame. Cars drive up the road on their own
// except while a knockback is displacing them.
func (c *Car) move() (lockoutEnded bool) {
	if !c.Alive() {
		return false
	}
	knocked := c.KnockedBack()
	lockoutEnded = c.Tick()
	if !knocked {
		c.Pos.Y -= c.SpeedY
	}
	return lockoutEnded
}

// Fireball is a one-shot projectile fired by an enemy car.
type Fireball struct {
	Body
	SpeedY int
	owner  *Body
}

func newFireball(owner *Car, spec config.FireballSpec) *Fireball {
	return &Fireball{
		Body:   newBody(KindFireball, owner.Pos, spec.Radius, 1, spec.Damage),
		SpeedY: spec.SpeedY,
		owner:  &owner.Body,
	}
}

// move flies the fireball up; it burns out when it leaves the top of the world.
func (f *Fireball) move() {
	if !f.Alive() {
		return
	}
	f.Pos.Y -= f.SpeedY
	if f.Pos.Y < 0 {
		f.Destroyed = true
	}
}

// Pickup is a collectable power: a coin or an invincibility star.
type Pickup struct {
	Body
	Frames int // How long the power lasts once collected
}

func newPickup(kind Kind, pos core.Point, spec config.PickupSpec) *Pickup {
	return &Pickup{
		Body:   newBody(kind, pos, spec.Radius, 1, 0),
		Frames: spec.MaxFrames,
	}
}

// EffectKind is the visual type of a short-lived effect.
type EffectKind int

const (
	EffectSmoke EffectKind = iota
	EffectFire
	EffectBlood
)

// Effect is a short-lived visual left by a collision or a destruction.
type Effect struct {
	Kind EffectKind
	Pos  core.Point
	TTL  int
}
