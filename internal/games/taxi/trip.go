package taxi

import (
	"github.com/vovakirdan/tui-taxi/internal/config"
	"github.com/vovakirdan/tui-taxi/internal/core"
)

// PassengerState tracks where a passenger is in their journey.
type PassengerState int

const (
	PassengerWaiting   PassengerState = iota // Standing at the roadside
	PassengerWalking                         // Walking to a stopped taxi
	PassengerRiding                          // In the taxi
	PassengerEjected                         // Thrown out of a wrecked taxi, follows the driver
	PassengerDelivered                       // Dropped at the flag
)

// TravelPlan is where a passenger wants to go and how urgently.
type TravelPlan struct {
	Dest             core.Point // Destination flag, in world coordinates
	Distance         int        // Distance to travel up the road
	Priority         int        // 1 is the most urgent
	CoinPowerApplied bool
}

// ExpectedFee returns the fee for this plan at its current priority.
func (p TravelPlan) ExpectedFee(tc config.TripConfig) float64 {
	return tc.BaseFare + float64(p.Distance)*tc.RatePerY + tc.PriorityRate(p.Priority)
}

// ApplyCoinPower raises urgency by one step (minimum priority 1).
// It applies at most once per plan and reports whether it changed anything.
func (p *TravelPlan) ApplyCoinPower() bool {
	if p.CoinPowerApplied {
		return false
	}
	p.CoinPowerApplied = true
	if p.Priority > 1 {
		p.Priority--
	}
	return true
}

// Passenger waits at the roadside for a taxi.
type Passenger struct {
	Body
	Plan        TravelPlan
	HasUmbrella bool
	State       PassengerState
	rainApplied bool
}

func newPassenger(def config.PassengerDef, spec config.PassengerSpec) *Passenger {
	return &Passenger{
		Body: newBody(KindPassenger, core.Pt(def.X, def.Y), spec.Radius, 1, 0),
		Plan: TravelPlan{
			Dest:     core.Pt(def.TravelEndX, def.Y-def.TravelEndY),
			Distance: def.TravelEndY,
			Priority: def.Priority,
		},
		HasUmbrella: def.HasUmbrella,
	}
}

// ApplyRain makes a passenger without an umbrella top priority, once.
func (p *Passenger) ApplyRain() bool {
	if p.HasUmbrella || p.rainApplied {
		return false
	}
	p.rainApplied = true
	p.Plan.Priority = 1
	return true
}

// TripState is the lifecycle of a trip.
type TripState int

const (
	TripNone TripState = iota
	TripInProgress
	TripComplete
)

func (s TripState) String() string {
	switch s {
	case TripInProgress:
		return "in_progress"
	case TripComplete:
		return "complete"
	default:
		return "none"
	}
}

// Trip is one passenger pickup-to-dropoff transaction.
type Trip struct {
	Passenger *Passenger
	State     TripState
	Fee       float64
	Penalty   float64
}

// StartTrip boards a passenger and opens a trip for them.
func StartTrip(p *Passenger) *Trip {
	p.State = PassengerRiding
	return &Trip{Passenger: p, State: TripInProgress}
}

// Priority returns the passenger's current priority.
func (t *Trip) Priority() int {
	return t.Passenger.Plan.Priority
}

// ExpectedFee returns the fee the trip would pay right now.
func (t *Trip) ExpectedFee(tc config.TripConfig) float64 {
	return t.Passenger.Plan.ExpectedFee(tc)
}

// Complete closes the trip. overshoot is how far the taxi drove past the flag.
func (t *Trip) Complete(tc config.TripConfig, overshoot int) {
	if t.State != TripInProgress {
		return
	}
	t.Fee = t.ExpectedFee(tc)
	t.Penalty = float64(max(overshoot, 0)) * tc.PenaltyPerY
	t.State = TripComplete
	t.Passenger.State = PassengerDelivered
	t.Passenger.Pos = t.Passenger.Plan.Dest
}

// Net returns what the trip earned.
func (t *Trip) Net() float64 {
	if t.State != TripComplete {
		return 0
	}
	return t.Fee - t.Penalty
}

// TripLog is a taxi's trip history, sized to the number of passengers.
type TripLog struct {
	trips    []*Trip
	capacity int
}

// NewTripLog creates a log that holds up to capacity trips.
func NewTripLog(capacity int) *TripLog {
	return &TripLog{trips: make([]*Trip, 0, capacity), capacity: capacity}
}

// Add records a trip. It fails when the log is full or a trip is in progress.
func (l *TripLog) Add(t *Trip) bool {
	if len(l.trips) >= l.capacity || l.Current() != nil {
		return false
	}
	l.trips = append(l.trips, t)
	return true
}

// Current returns the trip in progress, or nil.
func (l *TripLog) Current() *Trip {
	if n := len(l.trips); n > 0 && l.trips[n-1].State == TripInProgress {
		return l.trips[n-1]
	}
	return nil
}

// LastCompleted returns the most recently completed trip, or nil.
func (l *TripLog) LastCompleted() *Trip {
	for i := len(l.trips) - 1; i >= 0; i-- {
		if l.trips[i].State == TripComplete {
			return l.trips[i]
		}
	}
	return nil
}

// Trips returns every recorded trip in order.
func (l *TripLog) Trips() []*Trip {
	return l.trips
}

// Earnings is the sum of fee minus penalty over completed trips.
func (l *TripLog) Earnings() float64 {
	total := 0.0
	for _, t := range l.trips {
		total += t.Net()
	}
	return total
}
