package tui

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.expected {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}
