package taxi

import (
	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
)

func (g *Game) updateWeather() {
	g.raining = config.WeatherAt(g.weather, g.frame) == config.WeatherRaining
}

// updatePlayer moves the controlled taxi, or the driver when on foot.
func (g *Game) updatePlayer() {
	d := g.driver
	if g.controlled() {
		t := g.taxi
		t.Moving = false
		if g.held.Down(core.ActionLeft) {
			t.Pos.X -= g.cfg.Taxi.SpeedX
			t.Moving = true
		}
		if g.held.Down(core.ActionRight) {
			t.Pos.X += g.cfg.Taxi.SpeedX
			t.Moving = true
		}
		t.Pos.X = core.Clamp(t.Pos.X, g.cfg.World.RoadL, g.cfg.World.RoadR)
		if g.held.Down(core.ActionUp) {
			g.scrollWorld(g.cfg.Taxi.SpeedY)
			t.Moving = true
		}
		t.Tick()
		d.Tick()
		d.Pos = t.Pos
		return
	}

	speed := g.cfg.Driver.WalkSpeed
	if g.held.Down(core.ActionLeft) {
		d.Pos.X -= speed
	}
	if g.held.Down(core.ActionRight) {
		d.Pos.X += speed
	}
	if g.held.Down(core.ActionUp) {
		d.Pos.Y -= speed
	}
	if g.held.Down(core.ActionDown) {
		d.Pos.Y += speed
	}
	d.Pos.X = core.Clamp(d.Pos.X, 0, g.cfg.World.Width)
	d.Pos.Y = min(d.Pos.Y, g.cfg.World.Height)
	d.Tick()

	g.taxi.Moving = false
	g.taxi.Tick()
}

// scrollWorld moves everything but the controlled taxi down the screen.
func (g *Game) scrollWorld(dy int) {
	g.scroll += dy
	for _, p := range g.passengers.Items() {
		p.Plan.Dest.Y += dy
		if p.State != PassengerRiding {
			p.Pos.Y += dy
		}
	}
	for _, c := range g.cars.Items() {
		c.Pos.Y += dy
	}
	for _, c := range g.enemies.Items() {
		c.Pos.Y += dy
	}
	for _, f := range g.fireballs.Items() {
		f.Pos.Y += dy
	}
	for _, c := range g.coins.Items() {
		c.Pos.Y += dy
	}
	for _, p := range g.powers.Items() {
		p.Pos.Y += dy
	}
	for _, e := range g.effects.Items() {
		e.Pos.Y += dy
	}
}

// updatePassengers handles rain, boarding, riding and the end of the trip.
func (g *Game) updatePassengers() {
	t := g.taxi
	canBoard := g.controlled() && !t.Moving && t.Trips.Current() == nil

	for _, p := range g.passengers.Items() {
		if g.raining && p.State != PassengerDelivered {
			p.ApplyRain()
		}

		switch p.State {
		case PassengerWaiting, PassengerWalking:
			if !canBoard || p.Pos.DistanceTo(t.Pos) > g.cfg.Passenger.TaxiDetectRadius {
				p.State = PassengerWaiting
				continue
			}
			p.State = PassengerWalking
			p.Pos = stepToward(p.Pos, t.Pos, g.cfg.Passenger.WalkSpeed)
			if p.Pos.DistanceTo(t.Pos) <= g.cfg.Passenger.BoardRadius {
				trip := StartTrip(p)
				if t.Trips.Add(trip) {
					canBoard = false
					g.emit(core.EventTripStarted, t.Pos, trip.ExpectedFee(g.cfg.Trip))
				} else {
					p.State = PassengerWaiting
				}
			}
		case PassengerRiding:
			p.Pos = t.Pos
		case PassengerEjected:
			p.Pos = g.driver.Pos.Add(int(g.cfg.Driver.Radius+p.Radius), 0)
		}
	}

	if !g.controlled() {
		return
	}
	cur := t.Trips.Current()
	if cur == nil {
		return
	}
	if g.coinTicks > 0 {
		cur.Passenger.Plan.ApplyCoinPower()
	}

	flag := cur.Passenger.Plan.Dest
	past := flag.Y - t.Pos.Y
	switch {
	case float64(past) > g.cfg.Trip.FlagRadius:
		cur.Complete(g.cfg.Trip, past)
	case !t.Moving && t.Pos.DistanceTo(flag) <= g.cfg.Trip.FlagRadius:
		cur.Complete(g.cfg.Trip, 0)
	default:
		return
	}
	g.emit(core.EventTripCompleted, flag, cur.Net())
}

// stepToward moves from by up to speed on each axis toward to.
func stepToward(from, to core.Point, speed int) core.Point {
	step := func(a, b int) int {
		switch {
		case b > a:
			return a + min(speed, b-a)
		case b < a:
			return a - min(speed, a-b)
		default:
			return a
		}
	}
	return core.Pt(step(from.X, to.X), step(from.Y, to.Y))
}

// updateTraffic moves cars, lets enemy cars fire and flies fireballs.
func (g *Game) updateTraffic() {
	for _, c := range g.cars.Items() {
		if c.move() {
			c.SpeedY = g.carSpeed(g.cfg.Car)
		}
	}
	for _, c := range g.enemies.Items() {
		if c.move() {
			c.SpeedY = g.carSpeed(g.cfg.EnemyCar.CarSpec)
		}
		if c.Alive() && g.rng.OneIn(g.cfg.EnemyCar.ShootChance) {
			g.fireballs.Add(newFireball(c, g.cfg.Fireball))
		}
	}
	for _, f := range g.fireballs.Items() {
		f.move()
	}
	for _, e := range g.effects.Items() {
		e.TTL--
	}
}

// vehicles returns every live vehicle body: the taxi first, then cars and enemy cars.
func (g *Game) vehicles() []*Body {
	out := make([]*Body, 0, 1+g.cars.Len()+g.enemies.Len())
	if g.taxi.Alive() {
		out = append(out, &g.taxi.Body)
	}
	for _, c := range g.cars.Items() {
		if c.Alive() {
			out = append(out, &c.Body)
		}
	}
	for _, c := range g.enemies.Items() {
		if c.Alive() {
			out = append(out, &c.Body)
		}
	}
	return out
}

// sweepCollisions runs the pairwise collision checks for one frame.
func (g *Game) sweepCollisions() {
	vehicles := g.vehicles()

	for i := 0; i < len(vehicles); i++ {
		for j := i + 1; j < len(vehicles); j++ {
			a, b := vehicles[i], vehicles[j]
			before := [2]float64{a.Health, b.Health}
			if !Collide(a, b, g.rules) {
				continue
			}
			g.addEffect(EffectSmoke, midpoint(a.Pos, b.Pos))
			if a.Kind == KindTaxi {
				g.emit(core.EventCrash, a.Pos, before[0]-a.Health)
			}
			g.checkDestroyed(a)
			g.checkDestroyed(b)
		}
	}

	onFoot := !g.driver.InTaxi && g.driver.Alive()

	for _, f := range g.fireballs.Items() {
		if !f.Alive() {
			continue
		}
		targets := vehicles
		if onFoot {
			targets = append(targets[:len(targets):len(targets)], &g.driver.Body)
		}
		for _, target := range targets {
			before := target.Health
			if HitWithFireball(f, target, g.rules) {
				if target.Kind == KindTaxi || target.Kind == KindDriver {
					g.emit(core.EventFireballHit, target.Pos, before-target.Health)
				}
				g.checkDestroyed(target)
				break
			}
		}
	}

	if onFoot {
		for _, v := range vehicles {
			if v.Kind == KindTaxi {
				continue // Parked replacement taxis never run the driver over
			}
			before := g.driver.Health
			if Collide(&g.driver.Body, v, g.rules) {
				g.addEffect(EffectBlood, g.driver.Pos)
				g.emit(core.EventCrash, g.driver.Pos, before-g.driver.Health)
			}
		}
	}

	g.collectPickups()
}

// collectPickups lets the taxi, or the driver on foot, pick up powers.
func (g *Game) collectPickups() {
	var collector *Body
	switch {
	case g.controlled():
		collector = &g.taxi.Body
	case g.driver.Alive():
		collector = &g.driver.Body
	default:
		return
	}

	for _, c := range g.coins.Items() {
		if Collides(collector, &c.Body) {
			c.Destroyed = true
			g.coinTicks = c.Frames
			g.emit(core.EventCoinCollected, c.Pos, 0)
		}
	}
	for _, p := range g.powers.Items() {
		if Collides(collector, &p.Body) {
			p.Destroyed = true
			collector.SetInvincible(p.Frames)
			g.emit(core.EventPowerCollected, p.Pos, 0)
		}
	}
}

func (g *Game) checkDestroyed(b *Body) {
	if b.Destroyed {
		g.addEffect(EffectFire, b.Pos)
	}
}

func (g *Game) addEffect(kind EffectKind, at core.Point) {
	g.effects.Add(&Effect{Kind: kind, Pos: at, TTL: g.cfg.Effects.TTL})
}

func midpoint(a, b core.Point) core.Point {
	return core.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// carSpeed rolls a traffic speed, scaled by difficulty.
func (g *Game) carSpeed(spec config.CarSpec) int {
	base := g.rng.Range(spec.MinSpeedY, spec.MaxSpeedY)
	return g.difficulty.Speed(base, g.Earnings(), g.frame)
}

// spawnTraffic randomly adds cars and enemy cars at the road edges.
func (g *Game) spawnTraffic() {
	earnings := g.Earnings()
	floor := g.cfg.Spawn.MinChance

	if g.rng.OneIn(g.difficulty.SpawnInterval(g.cfg.Spawn.CarChance, floor, earnings, g.frame)) {
		g.cars.Add(g.newTrafficCar(KindCar, g.cfg.Car))
	}
	if g.rng.OneIn(g.difficulty.SpawnInterval(g.cfg.Spawn.EnemyCarChance, floor, earnings, g.frame)) {
		g.enemies.Add(g.newTrafficCar(KindEnemyCar, g.cfg.EnemyCar.CarSpec))
	}
}

func (g *Game) newTrafficCar(kind Kind, spec config.CarSpec) *Car {
	x := pick(g.rng, g.cfg.World.Lanes)
	y := pick(g.rng, spec.SpawnYs)
	return newCar(kind, core.Pt(x, y), spec, g.carSpeed(spec))
}

// prune drops spent entities from the pools.
func (g *Game) prune() {
	h := g.cfg.World.Height
	onRoad := func(b *Body) bool {
		return b.Alive() && b.Pos.Y > -h && b.Pos.Y < 2*h
	}

	g.cars.Prune(func(c *Car) bool { return onRoad(&c.Body) })
	g.enemies.Prune(func(c *Car) bool { return onRoad(&c.Body) })
	g.fireballs.Prune(func(f *Fireball) bool { return f.Alive() })

	// Pickups start far up the road, so only drop the ones left behind.
	behind := func(p *Pickup) bool { return p.Alive() && p.Pos.Y < 2*h }
	g.coins.Prune(behind)
	g.powers.Prune(behind)

	g.passengers.Prune(func(p *Passenger) bool {
		return p.State != PassengerDelivered || p.Pos.Y < 2*h
	})
	g.effects.Prune(func(e *Effect) bool { return e.TTL > 0 })
}
