package taxi

import "github.com/vovakirdan/tui-taxi/internal/core"

// RespawnState is the taxi replacement cycle.
type RespawnState int

const (
	RespawnActive          RespawnState = iota // Original taxi under player control
	RespawnPending                             // Taxi destroyed, replacement being placed
	RespawnNewTaxiInactive                     // Replacement waits for the driver on foot
	RespawnNewTaxiActive                       // Driver boarded the replacement
)

func (s RespawnState) String() string {
	switch s {
	case RespawnActive:
		return "active"
	case RespawnPending:
		return "destroyed_pending_respawn"
	case RespawnNewTaxiInactive:
		return "new_taxi_inactive"
	case RespawnNewTaxiActive:
		return "new_taxi_active"
	default:
		return "unknown"
	}
}

// controlled reports whether the player is driving a live taxi.
func (g *Game) controlled() bool {
	return g.driver.InTaxi && g.taxi.Alive()
}

// updateRespawn runs the replacement cycle after collisions are resolved.
func (g *Game) updateRespawn() {
	switch g.respawn {
	case RespawnActive, RespawnNewTaxiActive:
		if g.taxi.Destroyed {
			g.respawn = RespawnPending
			g.ejectDriver()
			g.taxi = g.spawnReplacement()
			g.respawn = RespawnNewTaxiInactive
		}

	case RespawnNewTaxiInactive:
		// A wrecked replacement is replaced at once; there is never a queue.
		if g.taxi.Destroyed {
			g.taxi = g.spawnReplacement()
			return
		}
		if g.driver.Alive() && g.driver.Pos.DistanceTo(g.taxi.Pos) <= g.cfg.Driver.TaxiGetInRadius {
			g.boardReplacement()
		}
	}
}

// ejectDriver throws the driver, and any passenger, out of the wrecked taxi.
// The wreck keeps the trip history until the driver boards again.
func (g *Game) ejectDriver() {
	g.wreck = g.taxi
	g.driver.InTaxi = false
	g.driver.Pos = g.wreck.Pos.Add(g.cfg.Driver.EjectOffsetX, g.cfg.Driver.EjectOffsetY)

	if cur := g.wreck.Trips.Current(); cur != nil {
		cur.Passenger.State = PassengerEjected
		cur.Passenger.Pos = g.driver.Pos
	}
	g.emit(core.EventTaxiDestroyed, g.wreck.Pos, 0)
}

// spawnReplacement places a new, uncontrolled taxi in a random lane.
func (g *Game) spawnReplacement() *Taxi {
	x := pick(g.rng, g.cfg.World.Lanes)
	y := g.rng.Range(g.cfg.Taxi.RespawnMinY, g.cfg.Taxi.RespawnMaxY)
	g.replacements++
	return newTaxi(core.Pt(x, y), g.cfg.Taxi, nil)
}

// boardReplacement hands control and the trip history to the new taxi.
func (g *Game) boardReplacement() {
	g.taxi.Trips = g.wreck.Trips
	g.wreck.Trips = nil
	g.wreck = nil

	g.driver.InTaxi = true
	g.driver.Pos = g.taxi.Pos
	if cur := g.taxi.Trips.Current(); cur != nil {
		cur.Passenger.State = PassengerRiding
		cur.Passenger.Pos = g.taxi.Pos
	}
	g.respawn = RespawnNewTaxiActive
	g.emit(core.EventTaxiReboarded, g.taxi.Pos, 0)
}
