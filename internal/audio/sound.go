// Package audio plays short synthesized sound effects for game events.
package audio

import "github.com/vovakirdan/tui-taxi/internal/core"

// Sound identifies one sound effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundCrash
	SoundFireball
	SoundCoin
	SoundPower
	SoundPickup
	SoundFare
	SoundWreck
	SoundDoor
	SoundWin
	SoundGameOver
)

// ForEvent returns the sound effect for a game event, or SoundNone.
func ForEvent(k core.EventKind) Sound {
	switch k {
	case core.EventCrash:
		return SoundCrash
	case core.EventFireballHit:
		return SoundFireball
	case core.EventCoinCollected:
		return SoundCoin
	case core.EventPowerCollected:
		return SoundPower
	case core.EventTripStarted:
		return SoundPickup
	case core.EventTripCompleted:
		return SoundFare
	case core.EventTaxiDestroyed:
		return SoundWreck
	case core.EventTaxiReboarded:
		return SoundDoor
	case core.EventLevelComplete:
		return SoundWin
	case core.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}
