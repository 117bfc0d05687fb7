package taxi

import (
	"testing"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

func body(kind Kind, x, y int, radius float64) *Body {
	b := newBody(kind, core.Pt(x, y), radius, 100, 10)
	return &b
}

func TestCollidesSymmetric(t *testing.T) {
	destroyed := body(KindCar, 0, 0, 50)
	destroyed.Destroyed = true

	tests := []struct {
		name     string
		a, b     *Body
		expected bool
	}{
		{"overlapping", body(KindTaxi, 0, 0, 30), body(KindCar, 40, 0, 30), true},
		{"touching", body(KindTaxi, 0, 0, 30), body(KindCar, 0, 60, 30), true},
		{"apart", body(KindTaxi, 0, 0, 30), body(KindCar, 0, 61, 30), false},
		{"nil body", body(KindTaxi, 0, 0, 30), nil, false},
		{"destroyed body", body(KindTaxi, 0, 0, 30), destroyed, false},
		{"fireball and car", body(KindFireball, 100, 100, 10), body(KindEnemyCar, 90, 120, 30), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.a, tc.b); got != tc.expected {
				t.Errorf("Collides(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Collides(tc.b, tc.a); got != tc.expected {
				t.Errorf("Collides(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestApplyDamage(t *testing.T) {
	b := body(KindCar, 0, 0, 30)

	if !b.ApplyDamage(30) {
		t.Fatal("ApplyDamage(30) should apply")
	}
	if b.Health != 70 {
		t.Errorf("Health = %v, expected 70", b.Health)
	}

	b.ApplyDamage(500)
	if b.Health != 0 {
		t.Errorf("Health = %v, expected floor at 0", b.Health)
	}
	if !b.Destroyed {
		t.Error("body at zero health should be destroyed")
	}
	if b.ApplyDamage(1) {
		t.Error("a destroyed body takes no more damage")
	}
	if b.Tick() {
		t.Error("a destroyed body does not update")
	}
}

func TestApplyDamageIgnoredWhileImmune(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Body)
	}{
		{"lockout", func(b *Body) { b.lockout(200) }},
		{"invincible", func(b *Body) { b.SetInvincible(1000) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := body(KindTaxi, 0, 0, 30)
			tc.setup(b)
			if b.ApplyDamage(50) {
				t.Error("ApplyDamage should be ignored while immune")
			}
			if b.Health != 100 {
				t.Errorf("Health = %v, expected 100", b.Health)
			}
		})
	}
}

func TestHealthNeverIncreasesOrGoesNegative(t *testing.T) {
	b := body(KindTaxi, 0, 0, 30)
	amounts := []float64{7, 0, -5, 13.5, 200, 3}

	prev := b.Health
	for i, amt := range amounts {
		b.ApplyDamage(amt)
		if b.Health > prev {
			t.Errorf("step %d: health rose from %v to %v", i, prev, b.Health)
		}
		if b.Health < 0 {
			t.Errorf("step %d: health %v is negative", i, b.Health)
		}
		prev = b.Health
	}
}

func TestTickCounters(t *testing.T) {
	b := body(KindCar, 0, 100, 30)
	b.lockout(3)
	b.startKnockback(1, 2)
	b.SetInvincible(1)

	ended := []bool{b.Tick(), b.Tick(), b.Tick()}
	if ended[0] || ended[1] || !ended[2] {
		t.Errorf("lockout ended flags = %v, expected only the third", ended)
	}
	if b.Pos.Y != 102 {
		t.Errorf("Pos.Y = %d, expected 102 after a 2-frame knockback", b.Pos.Y)
	}
	if b.LockedOut() || b.KnockedBack() || b.Invincible() {
		t.Error("all counters should have run out")
	}
}

func TestKindString(t *testing.T) {
	if KindEnemyCar.String() != "enemy_car" {
		t.Errorf("String() = %q, expected enemy_car", KindEnemyCar.String())
	}
}
