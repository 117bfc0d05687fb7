package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// ScoreFile appends one "player,earnings" CSV record per finished run.
type ScoreFile struct {
	path string
	mu   sync.Mutex
}

// NewScoreFile creates a score file writer. The file is created on first write.
func NewScoreFile(path string) (*ScoreFile, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("storage: empty score file path")
	}
	return &ScoreFile{path: path}, nil
}

// Path returns the file being written.
func (f *ScoreFile) Path() string {
	return f.path
}

// RecordScore implements core.ScoreRecorder.
func (f *ScoreFile) RecordScore(rec core.ScoreRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open score file: %w", err)
	}

	// Names with commas, quotes or newlines are quoted so each run stays one record.
	w := csv.NewWriter(file)
	werr := w.Write([]string{rec.Player, strconv.FormatFloat(rec.Earnings, 'f', 2, 64)})
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := file.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("storage: cannot write score file: %w", werr)
	}
	return nil
}

// MultiRecorder writes each record to every sink, in order.
// All sinks are tried; the errors are joined.
type MultiRecorder []core.ScoreRecorder

// RecordScore implements core.ScoreRecorder.
func (m MultiRecorder) RecordScore(rec core.ScoreRecord) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.RecordScore(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
