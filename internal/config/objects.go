package config

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Object types accepted in the first column of a game-objects file.
const (
	ObjectTaxi            = "TAXI"
	ObjectPassenger       = "PASSENGER"
	ObjectCoin            = "COIN"
	ObjectInvinciblePower = "INVINCIBLE_POWER"
)

// Position is a world position read from a CSV row.
type Position struct {
	X, Y int
}

// PassengerDef is one PASSENGER row.
type PassengerDef struct {
	X, Y        int
	Priority    int
	TravelEndX  int
	TravelEndY  int // Distance to travel up the road
	HasUmbrella bool
}

// GameObjects is the initial placement of every object in a level.
type GameObjects struct {
	Taxi       Position
	Passengers []PassengerDef
	Coins      []Position
	Powers     []Position
}

// LoadGameObjects reads a game-objects file, or the embedded level when path is empty.
func LoadGameObjects(path string) (GameObjects, error) {
	if path == "" {
		return ParseGameObjects(bytes.NewReader(defaultObjectsCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return GameObjects{}, fmt.Errorf("failed to open objects file %s: %w", path, err)
	}
	defer f.Close()

	objs, err := ParseGameObjects(f)
	if err != nil {
		return objs, fmt.Errorf("%s: %w", path, err)
	}
	return objs, nil
}

// ParseGameObjects parses CSV rows of the form TYPE,x,y[,...].
// Exactly one TAXI row is required.
func ParseGameObjects(r io.Reader) (GameObjects, error) {
	var objs GameObjects

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	taxis := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return objs, fmt.Errorf("objects: %w", err)
		}
		line, _ := cr.FieldPos(0)

		kind := strings.ToUpper(strings.TrimSpace(rec[0]))
		switch kind {
		case ObjectTaxi, ObjectCoin, ObjectInvinciblePower:
			if len(rec) < 3 {
				return objs, fmt.Errorf("objects: line %d: %s needs x,y", line, kind)
			}
			ints, err := parseInts(rec[1:3])
			if err != nil {
				return objs, fmt.Errorf("objects: line %d: %w", line, err)
			}
			pos := Position{X: ints[0], Y: ints[1]}
			switch kind {
			case ObjectTaxi:
				taxis++
				objs.Taxi = pos
			case ObjectCoin:
				objs.Coins = append(objs.Coins, pos)
			default:
				objs.Powers = append(objs.Powers, pos)
			}

		case ObjectPassenger:
			if len(rec) < 7 {
				return objs, fmt.Errorf("objects: line %d: PASSENGER needs x,y,priority,travel_end_x,travel_end_y,has_umbrella", line)
			}
			ints, err := parseInts(rec[1:6])
			if err != nil {
				return objs, fmt.Errorf("objects: line %d: %w", line, err)
			}
			umbrella, err := strconv.ParseBool(strings.TrimSpace(rec[6]))
			if err != nil {
				return objs, fmt.Errorf("objects: line %d: has_umbrella %q: %w", line, rec[6], err)
			}
			if ints[2] < 1 {
				return objs, fmt.Errorf("objects: line %d: priority %d must be at least 1", line, ints[2])
			}
			objs.Passengers = append(objs.Passengers, PassengerDef{
				X:           ints[0],
				Y:           ints[1],
				Priority:    ints[2],
				TravelEndX:  ints[3],
				TravelEndY:  ints[4],
				HasUmbrella: umbrella,
			})

		default:
			return objs, fmt.Errorf("objects: line %d: unknown object type %q", line, rec[0])
		}
	}

	if taxis != 1 {
		return objs, fmt.Errorf("objects: expected exactly one TAXI row, found %d", taxis)
	}
	return objs, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}
