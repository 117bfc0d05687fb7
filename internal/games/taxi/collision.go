package taxi

import "github.com/vovakirdan/tui-taxi/internal/config"

// CollisionRules holds the timing and damage scaling of vehicle collisions.
type CollisionRules struct {
	LockoutTicks         int
	KnockbackTicks       int
	TaxiDamageMultiplier float64
}

// RulesFromConfig builds collision rules from the collision config section.
func RulesFromConfig(c config.CollisionConfig) CollisionRules {
	return CollisionRules{
		LockoutTicks:         c.LockoutTicks,
		KnockbackTicks:       c.KnockbackTicks,
		TaxiDamageMultiplier: c.TaxiDamageMultiplier,
	}
}

// outgoing returns the damage b deals to whatever it hits.
func (r CollisionRules) outgoing(b *Body) float64 {
	if b.Kind == KindTaxi {
		return b.Damage * r.TaxiDamageMultiplier
	}
	return b.Damage
}

func isVehicle(k Kind) bool {
	switch k {
	case KindTaxi, KindCar, KindEnemyCar:
		return true
	default:
		return false
	}
}

func isPedestrian(k Kind) bool {
	return k == KindDriver || k == KindPassenger
}

// Resolve handles a collision between two vehicles. When both are alive,
// neither is locked out or invincible and they overlap, each takes the other's
// damage, both enter a lockout and both start a knockback that separates them:
// the upper body (smaller y) moves up and the other moves down, with a moving
// up on a tie. It reports whether a collision was resolved.
func Resolve(a, b *Body, r CollisionRules) bool {
	if !a.Alive() || !b.Alive() || a == b {
		return false
	}
	if a.Immune() || b.Immune() {
		return false
	}
	if !Collides(a, b) {
		return false
	}

	toA, toB := r.outgoing(b), r.outgoing(a)
	a.ApplyDamage(toA)
	b.ApplyDamage(toB)

	a.lockout(r.LockoutTicks)
	b.lockout(r.LockoutTicks)

	up, down := a, b
	if b.Pos.Y < a.Pos.Y {
		up, down = b, a
	}
	up.startKnockback(-1, r.KnockbackTicks)
	down.startKnockback(1, r.KnockbackTicks)
	return true
}

// Trample applies a vehicle's damage to a pedestrian it runs into.
// The pedestrian is locked out afterwards; the vehicle is unaffected.
func Trample(ped, vehicle *Body, r CollisionRules) bool {
	if ped.Immune() || !Collides(ped, vehicle) {
		return false
	}
	if !ped.ApplyDamage(vehicle.Damage) {
		return false
	}
	ped.lockout(r.LockoutTicks)
	return true
}

// HitWithFireball lets a fireball strike a target. Any overlap spends the
// fireball, which never hurts the car that fired it; the target loses health
// only when it is not immune, and a damaging hit starts a lockout without
// knockback. It reports whether the fireball was spent.
func HitWithFireball(f *Fireball, target *Body, r CollisionRules) bool {
	if f == nil || target == f.owner || !Collides(&f.Body, target) {
		return false
	}
	if target.ApplyDamage(f.Damage) {
		target.lockout(r.LockoutTicks)
	}
	f.Destroyed = true
	return true
}

// Collide dispatches a collision between two bodies by kind.
// It reports whether anything happened.
func Collide(a, b *Body, r CollisionRules) bool {
	switch {
	case isVehicle(a.Kind) && isVehicle(b.Kind):
		return Resolve(a, b, r)
	case isPedestrian(a.Kind) && isVehicle(b.Kind):
		return Trample(a, b, r)
	case isVehicle(a.Kind) && isPedestrian(b.Kind):
		return Trample(b, a, r)
	default:
		// Pickups and fireballs have their own handlers.
		return false
	}
}
