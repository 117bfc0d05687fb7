package taxi

// Snapshot captures the simulation state with primitive types only.
// The run id and the score sink are not part of it.
type Snapshot struct {
	Frame        int
	Scroll       int
	Respawn      int
	Replacements int
	CoinTicks    int
	Raining      bool
	GameOver     bool
	Won          bool
	Earnings     float64

	// Taxi and driver: X, Y, Health, InTaxi
	TaxiX, TaxiY   int
	TaxiHealth     float64
	DriverX        int
	DriverY        int
	DriverHealth   float64
	DriverInTaxi   bool
	CompletedTrips int

	// Each car is 4 ints: X, Y, Speed, Destroyed
	CarData   []int
	EnemyData []int
	// Each fireball is 2 ints: X, Y
	FireballData []int
	// Each passenger is 4 ints: X, Y, State, Priority
	PassengerData []int

	RNGState uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:        g.frame,
		Scroll:       g.scroll,
		Respawn:      int(g.respawn),
		Replacements: g.replacements,
		CoinTicks:    g.coinTicks,
		Raining:      g.raining,
		GameOver:     g.gameOver,
		Won:          g.won,
		Earnings:     g.Earnings(),

		TaxiX:        g.taxi.Pos.X,
		TaxiY:        g.taxi.Pos.Y,
		TaxiHealth:   g.taxi.Health,
		DriverX:      g.driver.Pos.X,
		DriverY:      g.driver.Pos.Y,
		DriverHealth: g.driver.Health,
		DriverInTaxi: g.driver.InTaxi,

		RNGState: g.rng.state,
	}

	for _, t := range g.tripLog().Trips() {
		if t.State == TripComplete {
			snap.CompletedTrips++
		}
	}

	flattenCars := func(cars []*Car) []int {
		data := make([]int, 0, len(cars)*4)
		for _, c := range cars {
			data = append(data, c.Pos.X, c.Pos.Y, c.SpeedY, boolInt(c.Destroyed))
		}
		return data
	}
	snap.CarData = flattenCars(g.cars.Items())
	snap.EnemyData = flattenCars(g.enemies.Items())

	for _, f := range g.fireballs.Items() {
		snap.FireballData = append(snap.FireballData, f.Pos.X, f.Pos.Y)
	}
	for _, p := range g.passengers.Items() {
		snap.PassengerData = append(snap.PassengerData, p.Pos.X, p.Pos.Y, int(p.State), p.Plan.Priority)
	}
	return snap
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)                     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Scroll)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Respawn)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Replacements)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CoinTicks)           //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.Raining))    //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.GameOver))   //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.Earnings*100)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TaxiX)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TaxiY)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TaxiHealth)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DriverX)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DriverY)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DriverHealth)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CompletedTrips)      //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.CarData, snap.EnemyData, snap.FireballData, snap.PassengerData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState
	return h
}
