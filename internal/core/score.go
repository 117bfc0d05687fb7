package core

import "time"

// ScoreRecord is one finished run.
type ScoreRecord struct {
	GameID   string
	RunID    string
	Player   string
	Earnings float64
	Won      bool
	Frames   int
	At       time.Time
}

// ScoreRecorder persists finished runs. Games call it at most once per run.
type ScoreRecorder interface {
	RecordScore(rec ScoreRecord) error
}
