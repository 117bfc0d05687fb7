package config

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// WeatherKind is the weather type of a window.
type WeatherKind string

const (
	WeatherSunny   WeatherKind = "SUNNY"
	WeatherRaining WeatherKind = "RAINING"
)

// WeatherWindow is an inclusive frame range with a weather type.
type WeatherWindow struct {
	Kind  WeatherKind
	Start int
	End   int
}

// LoadWeather reads a weather file, or the embedded schedule when path is empty.
func LoadWeather(path string) ([]WeatherWindow, error) {
	if path == "" {
		return ParseWeather(bytes.NewReader(defaultWeatherCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weather file %s: %w", path, err)
	}
	defer f.Close()

	windows, err := ParseWeather(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return windows, nil
}

// ParseWeather parses rows of the form TYPE,start_frame,end_frame.
func ParseWeather(r io.Reader) ([]WeatherWindow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var windows []WeatherWindow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("weather: %w", err)
		}
		line, _ := cr.FieldPos(0)

		kind := WeatherKind(strings.ToUpper(strings.TrimSpace(rec[0])))
		if kind != WeatherSunny && kind != WeatherRaining {
			return nil, fmt.Errorf("weather: line %d: unknown weather %q", line, rec[0])
		}
		ints, err := parseInts(rec[1:])
		if err != nil {
			return nil, fmt.Errorf("weather: line %d: %w", line, err)
		}
		if ints[0] > ints[1] {
			return nil, fmt.Errorf("weather: line %d: start %d after end %d", line, ints[0], ints[1])
		}
		windows = append(windows, WeatherWindow{Kind: kind, Start: ints[0], End: ints[1]})
	}
	return windows, nil
}

// WeatherAt returns the weather for a frame. Frames outside every window are sunny.
func WeatherAt(windows []WeatherWindow, frame int) WeatherKind {
	for _, w := range windows {
		if frame >= w.Start && frame <= w.End {
			return w.Kind
		}
	}
	return WeatherSunny
}
