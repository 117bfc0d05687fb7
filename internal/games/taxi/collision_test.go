package taxi

import (
	"testing"

	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
)

var testRules = CollisionRules{LockoutTicks: 200, KnockbackTicks: 10, TaxiDamageMultiplier: 1}

func TestResolveDamagesBothAndLocksOut(t *testing.T) {
	taxi := newBody(KindTaxi, core.Pt(480, 500), 30, 100, 100)
	car := newBody(KindCar, core.Pt(480, 540), 30, 100, 50)

	if !Resolve(&taxi, &car, testRules) {
		t.Fatal("Resolve() = false, expected a collision")
	}
	if taxi.Health != 50 {
		t.Errorf("taxi Health = %v, expected 50", taxi.Health)
	}
	if !car.Destroyed {
		t.Error("car should be destroyed by the taxi's 100 damage")
	}
	if taxi.lockoutTicks != 200 || taxi.knockbackTicks != 10 {
		t.Errorf("taxi counters = (%d, %d), expected (200, 10)", taxi.lockoutTicks, taxi.knockbackTicks)
	}
}

func TestResolveIgnoredDuringLockout(t *testing.T) {
	a := newBody(KindCar, core.Pt(0, 0), 30, 100, 10)
	b := newBody(KindEnemyCar, core.Pt(0, 20), 30, 100, 10)

	if !Resolve(&a, &b, testRules) {
		t.Fatal("first Resolve() should collide")
	}
	healthA, healthB := a.Health, b.Health

	// Still overlapping on the next frames of the same lockout window.
	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
		b.Pos.Y = a.Pos.Y
		if Resolve(&a, &b, testRules) {
			t.Fatalf("frame %d: Resolve() collided during lockout", i)
		}
	}
	if a.Health != healthA || b.Health != healthB {
		t.Errorf("health changed during lockout: (%v, %v) -> (%v, %v)", healthA, healthB, a.Health, b.Health)
	}
}

func TestResolveIgnoresInvincible(t *testing.T) {
	taxi := newBody(KindTaxi, core.Pt(0, 0), 30, 100, 100)
	car := newBody(KindCar, core.Pt(0, 10), 30, 100, 50)
	taxi.SetInvincible(1000)

	if Resolve(&taxi, &car, testRules) {
		t.Error("Resolve() should not collide with an invincible taxi")
	}
	if taxi.Health != 100 || car.Health != 100 {
		t.Errorf("health = (%v, %v), expected untouched", taxi.Health, car.Health)
	}
}

func TestKnockbackSeparatesPair(t *testing.T) {
	tests := []struct {
		name       string
		ay, by     int
		wantAFinal int
		wantBFinal int
	}{
		{"a above b", 100, 120, 90, 130},
		{"b above a", 120, 100, 130, 90},
		{"tie moves a up", 100, 100, 90, 110},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newBody(KindCar, core.Pt(0, tc.ay), 30, 1000, 1)
			b := newBody(KindCar, core.Pt(0, tc.by), 30, 1000, 1)
			if !Resolve(&a, &b, testRules) {
				t.Fatal("Resolve() should collide")
			}

			aAbove := tc.ay <= tc.by
			for frame := 0; frame < 15; frame++ {
				a.Tick()
				b.Tick()
				if tc.ay != tc.by && (a.Pos.Y < b.Pos.Y) != aAbove {
					t.Fatalf("frame %d: ordering reversed (a=%d, b=%d)", frame, a.Pos.Y, b.Pos.Y)
				}
			}
			if a.Pos.Y != tc.wantAFinal || b.Pos.Y != tc.wantBFinal {
				t.Errorf("final y = (%d, %d), expected (%d, %d)", a.Pos.Y, b.Pos.Y, tc.wantAFinal, tc.wantBFinal)
			}
		})
	}
}

func TestTaxiDamageMultiplier(t *testing.T) {
	tests := []struct {
		multiplier float64
		carHealth  float64
	}{
		{1.0, 100},
		{0.5, 150},
		{0, 200},
	}

	for _, tc := range tests {
		taxi := newBody(KindTaxi, core.Pt(0, 0), 30, 100, 100)
		car := newBody(KindCar, core.Pt(0, 0), 30, 200, 10)
		rules := testRules
		rules.TaxiDamageMultiplier = tc.multiplier

		Resolve(&taxi, &car, rules)
		if car.Health != tc.carHealth {
			t.Errorf("multiplier %v: car Health = %v, expected %v", tc.multiplier, car.Health, tc.carHealth)
		}
		if taxi.Health != 90 {
			t.Errorf("multiplier %v: taxi Health = %v, expected 90", tc.multiplier, taxi.Health)
		}
	}
}

func TestRulesFromConfig(t *testing.T) {
	r := RulesFromConfig(config.DefaultTaxiConfig().Collision)
	if r != testRules {
		t.Errorf("RulesFromConfig() = %+v, expected %+v", r, testRules)
	}
}

func TestHitWithFireball(t *testing.T) {
	spec := config.FireballSpec{Radius: 10, Damage: 20, SpeedY: 10}
	enemy := newCar(KindEnemyCar, core.Pt(480, 300), config.DefaultTaxiConfig().EnemyCar.CarSpec, 3)
	f := newFireball(enemy, spec)

	if HitWithFireball(f, &enemy.Body, testRules) {
		t.Error("a fireball never hits the car that fired it")
	}

	taxi := newBody(KindTaxi, core.Pt(480, 310), 30, 100, 100)
	if !HitWithFireball(f, &taxi, testRules) {
		t.Fatal("HitWithFireball() = false, expected a hit")
	}
	if taxi.Health != 80 {
		t.Errorf("taxi Health = %v, expected 80", taxi.Health)
	}
	if !f.Destroyed {
		t.Error("fireball should be spent after one hit")
	}
	if HitWithFireball(f, &taxi, testRules) {
		t.Error("a spent fireball cannot hit again")
	}
	if taxi.KnockedBack() {
		t.Error("fireballs cause no knockback")
	}
	if !taxi.LockedOut() {
		t.Error("a damaging fireball hit should start a lockout")
	}
}

func TestBackToBackFireballsDamageOnce(t *testing.T) {
	enemy := newCar(KindEnemyCar, core.Pt(0, 0), config.DefaultTaxiConfig().EnemyCar.CarSpec, 3)
	spec := config.FireballSpec{Radius: 10, Damage: 20}
	taxi := newBody(KindTaxi, core.Pt(500, 500), 30, 100, 100)

	first := newFireball(enemy, spec)
	first.Pos = core.Pt(500, 500)
	second := newFireball(enemy, spec)
	second.Pos = core.Pt(500, 505)

	if !HitWithFireball(first, &taxi, testRules) || !HitWithFireball(second, &taxi, testRules) {
		t.Fatal("both fireballs should be spent on the taxi")
	}
	if taxi.Health != 80 {
		t.Errorf("taxi Health = %v, expected 80", taxi.Health)
	}

	for range testRules.LockoutTicks {
		taxi.Tick()
	}
	third := newFireball(enemy, spec)
	third.Pos = taxi.Pos
	HitWithFireball(third, &taxi, testRules)
	if taxi.Health != 60 {
		t.Errorf("taxi Health after lockout = %v, expected 60", taxi.Health)
	}
}

func TestFireballSpentOnImmuneTarget(t *testing.T) {
	enemy := newCar(KindEnemyCar, core.Pt(0, 0), config.DefaultTaxiConfig().EnemyCar.CarSpec, 3)
	f := newFireball(enemy, config.FireballSpec{Radius: 10, Damage: 20})
	f.Pos = core.Pt(500, 500)

	taxi := newBody(KindTaxi, core.Pt(500, 500), 30, 100, 100)
	taxi.SetInvincible(10)
	if !HitWithFireball(f, &taxi, testRules) {
		t.Fatal("fireball should still be spent on an immune target")
	}
	if taxi.Health != 100 {
		t.Errorf("taxi Health = %v, expected 100", taxi.Health)
	}
}

func TestFireballBurnsOutAtTop(t *testing.T) {
	enemy := newCar(KindEnemyCar, core.Pt(0, 15), config.DefaultTaxiConfig().EnemyCar.CarSpec, 3)
	f := newFireball(enemy, config.FireballSpec{Radius: 10, Damage: 20, SpeedY: 10})

	f.move()
	if f.Destroyed {
		t.Fatal("fireball at y=5 should still fly")
	}
	f.move()
	if !f.Destroyed {
		t.Error("fireball above the top of the world should burn out")
	}
}

func TestCollideDispatch(t *testing.T) {
	driver := newBody(KindDriver, core.Pt(0, 0), 10, 100, 0)
	car := newBody(KindCar, core.Pt(5, 5), 30, 100, 50)
	coin := newBody(KindCoin, core.Pt(0, 0), 20, 1, 0)

	if !Collide(&car, &driver, testRules) {
		t.Fatal("a car should run over the driver")
	}
	if driver.Health != 50 || car.Health != 100 {
		t.Errorf("health = (driver %v, car %v), expected (50, 100)", driver.Health, car.Health)
	}
	if Collide(&driver, &car, testRules) {
		t.Error("the driver is locked out after being hit")
	}
	if Collide(&coin, &driver, testRules) {
		t.Error("pickups are not resolved by Collide")
	}
}
