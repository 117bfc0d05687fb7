package taxi

import "github.com/vovakirdan/tui-taxi/internal/core"

// Kind tags every collidable entity. Collision dispatch switches on it.
type Kind int

const (
	KindTaxi Kind = iota
	KindCar
	KindEnemyCar
	KindFireball
	KindCoin
	KindInvinciblePower
	KindPassenger
	KindDriver
)

func (k Kind) String() string {
	switch k {
	case KindTaxi:
		return "taxi"
	case KindCar:
		return "car"
	case KindEnemyCar:
		return "enemy_car"
	case KindFireball:
		return "fireball"
	case KindCoin:
		return "coin"
	case KindInvinciblePower:
		return "invincible_power"
	case KindPassenger:
		return "passenger"
	case KindDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// Body is the positioned, damageable, collidable part shared by every entity.
//
// Two counters run after a collision: lockoutTicks suppresses further collision
// damage and knockbackTicks drives the 1px-per-frame separation. The lockout
// always outlasts the knockback.
type Body struct {
	Kind      Kind
	Pos       core.Point
	Radius    float64
	Health    float64
	Damage    float64
	Destroyed bool

	lockoutTicks    int
	knockbackTicks  int
	knockbackDir    int // -1 moves up, +1 moves down
	invincibleTicks int
}

func newBody(kind Kind, pos core.Point, radius, health, damage float64) Body {
	return Body{
		Kind:   kind,
		Pos:    pos,
		Radius: radius,
		Health: health,
		Damage: damage,
	}
}

// Alive reports whether b exists and has not been destroyed.
func (b *Body) Alive() bool {
	return b != nil && !b.Destroyed
}

// Circle returns the collision circle of the body.
func (b *Body) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// LockedOut reports whether the body is inside a post-collision lockout.
func (b *Body) LockedOut() bool {
	return b.lockoutTicks > 0
}

// KnockedBack reports whether the body is still being displaced.
func (b *Body) KnockedBack() bool {
	return b.knockbackTicks > 0
}

// Invincible reports whether a power currently shields the body.
func (b *Body) Invincible() bool {
	return b.invincibleTicks > 0
}

// Immune reports whether new damage would be ignored.
func (b *Body) Immune() bool {
	return b.LockedOut() || b.Invincible()
}

// SetInvincible shields the body for the given number of frames.
func (b *Body) SetInvincible(ticks int) {
	b.invincibleTicks = max(b.invincibleTicks, ticks)
}

// InvincibleTicks returns the remaining invincibility frames.
func (b *Body) InvincibleTicks() int {
	return b.invincibleTicks
}

// ApplyDamage subtracts amount from health unless the body is destroyed or
// immune. Health floors at zero and reaching zero destroys the body for good.
// It reports whether any damage was applied.
func (b *Body) ApplyDamage(amount float64) bool {
	if !b.Alive() || b.Immune() || amount <= 0 {
		return false
	}
	b.Health = max(b.Health-amount, 0)
	if b.Health == 0 {
		b.Destroyed = true
	}
	return true
}

// lockout starts a lockout window without knockback.
func (b *Body) lockout(ticks int) {
	b.lockoutTicks = ticks
}

func (b *Body) startKnockback(dir, ticks int) {
	b.knockbackDir = dir
	b.knockbackTicks = ticks
}

// Tick advances the body's counters by one frame and applies knockback.
// It reports whether the lockout ended on this frame.
func (b *Body) Tick() (lockoutEnded bool) {
	if !b.Alive() {
		return false
	}
	if b.knockbackTicks > 0 {
		b.Pos.Y += b.knockbackDir
		b.knockbackTicks--
	}
	if b.lockoutTicks > 0 {
		b.lockoutTicks--
		lockoutEnded = b.lockoutTicks == 0
	}
	if b.invincibleTicks > 0 {
		b.invincibleTicks--
	}
	return lockoutEnded
}

// Collides reports whether two live bodies overlap.
// A nil or destroyed body never collides.
func Collides(a, b *Body) bool {
	if !a.Alive() || !b.Alive() {
		return false
	}
	return core.CirclesOverlap(a.Circle(), b.Circle())
}
