package storage

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

func TestScoreFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scores.csv")
	f, err := NewScoreFile(path)
	if err != nil {
		t.Fatalf("NewScoreFile() failed: %v", err)
	}

	f.RecordScore(core.ScoreRecord{Player: "alice", Earnings: 34.75})
	f.RecordScore(core.ScoreRecord{Player: "bob", Earnings: 10})
	f.RecordScore(core.ScoreRecord{Player: "carol", Earnings: 1.005})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	expected := "alice,34.75\nbob,10.00\ncarol,1.00\n"
	if string(data) != expected {
		t.Errorf("score file = %q, expected %q", data, expected)
	}
}

func TestScoreFileQuotesPlayerName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	f, err := NewScoreFile(path)
	if err != nil {
		t.Fatalf("NewScoreFile() failed: %v", err)
	}

	name := "doe, jane\nmallory,9999.00"
	if err := f.RecordScore(core.ScoreRecord{Player: name, Earnings: 12.5}); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	f.RecordScore(core.ScoreRecord{Player: "bob", Earnings: 3})

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("score file has %d records, expected 2: %q", len(records), records)
	}
	if records[0][0] != name || records[0][1] != "12.50" {
		t.Errorf("first record = %q, expected [%q 12.50]", records[0], name)
	}
	if records[1][0] != "bob" || records[1][1] != "3.00" {
		t.Errorf("second record = %q, expected [bob 3.00]", records[1])
	}
}

func TestNewScoreFileEmptyPath(t *testing.T) {
	if _, err := NewScoreFile(""); err == nil {
		t.Error("NewScoreFile(\"\") should fail")
	}
}

type countingRecorder struct {
	n   int
	err error
}

func (c *countingRecorder) RecordScore(core.ScoreRecord) error {
	c.n++
	return c.err
}

func TestMultiRecorder(t *testing.T) {
	failing := &countingRecorder{err: errors.New("disk full")}
	ok := &countingRecorder{}

	m := MultiRecorder{failing, nil, ok}
	err := m.RecordScore(core.ScoreRecord{Player: "x"})

	if err == nil {
		t.Error("RecordScore() should report the failing sink")
	}
	if failing.n != 1 || ok.n != 1 {
		t.Errorf("writes = %d/%d, expected every sink written once", failing.n, ok.n)
	}
}
