package core

import "fmt"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCrash EventKind = iota
	EventFireballHit
	EventCoinCollected
	EventPowerCollected
	EventTripStarted
	EventTripCompleted
	EventTaxiDestroyed
	EventTaxiReboarded
	EventLevelComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCrash:
		return "crash"
	case EventFireballHit:
		return "fireball_hit"
	case EventCoinCollected:
		return "coin"
	case EventPowerCollected:
		return "power"
	case EventTripStarted:
		return "trip_started"
	case EventTripCompleted:
		return "trip_completed"
	case EventTaxiDestroyed:
		return "taxi_destroyed"
	case EventTaxiReboarded:
		return "taxi_reboarded"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is emitted by a game step for the platform's sound and log sinks.
type Event struct {
	Kind   EventKind
	Frame  int
	At     Point
	Amount float64 // Damage dealt or fee earned, when relevant
}
