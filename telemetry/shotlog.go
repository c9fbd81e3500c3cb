package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ShotRecord is one fired shot as written to the shot log.
type ShotRecord struct {
	Tick   int     `csv:"tick"`
	Time   float64 `csv:"time"`
	Weapon string  `csv:"weapon"`
	Index  int     `csv:"pattern_index"`
	DeltaX float64 `csv:"delta_x"`
	DeltaY float64 `csv:"delta_y"`
	AimX   float64 `csv:"aim_x"`
	AimY   float64 `csv:"aim_y"`
	Target string  `csv:"target"`
	Points int     `csv:"points"`
}

// ShotLog streams shot records to a CSV file. A nil *ShotLog discards
// everything, so callers never need to check whether logging is on.
type ShotLog struct {
	file          *os.File
	headerWritten bool
	count         int
}

// NewShotLog creates the CSV file at path, creating parent directories.
// Returns nil if path is empty (logging disabled).
func NewShotLog(path string) (*ShotLog, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating shot log directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating shot log: %w", err)
	}
	return &ShotLog{file: f}, nil
}

// Write appends one record.
func (l *ShotLog) Write(r ShotRecord) error {
	if l == nil {
		return nil
	}

	records := []ShotRecord{r}

	if !l.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, l.file); err != nil {
			return fmt.Errorf("writing shot: %w", err)
		}
		l.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, l.file); err != nil {
			return fmt.Errorf("writing shot: %w", err)
		}
	}
	l.count++
	return nil
}

// Count returns how many records were written.
func (l *ShotLog) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Close flushes and closes the file.
func (l *ShotLog) Close() error {
	if l == nil {
		return nil
	}
	return l.file.Close()
}
