package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
)

func TestShotLogWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "shots.csv")
	log, err := NewShotLog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shots := []ShotRecord{
		{Tick: 1, Time: 1.0 / 60, Weapon: "rifle", Index: 0, DeltaY: 1.8, Target: "Bullseye", Points: 50},
		{Tick: 7, Time: 7.0 / 60, Weapon: "rifle", Index: 1, DeltaX: -0.3, DeltaY: 1.5},
	}
	for _, s := range shots {
		if err := log.Write(s); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	if log.Count() != 2 {
		t.Errorf("expected 2 records, got %d", log.Count())
	}
	if err := log.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if n := strings.Count(string(data), "pattern_index"); n != 1 {
		t.Errorf("expected one header line, found %d", n)
	}

	var got []ShotRecord
	if err := gocsv.UnmarshalBytes(data, &got); err != nil {
		t.Fatalf("parsing log: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Target != "Bullseye" || got[0].Points != 50 {
		t.Errorf("unexpected first row %+v", got[0])
	}
	if got[1].Index != 1 || got[1].DeltaX != -0.3 {
		t.Errorf("unexpected second row %+v", got[1])
	}
}

func TestShotLogDisabled(t *testing.T) {
	log, err := NewShotLog("")
	if err != nil || log != nil {
		t.Fatalf("empty path should disable logging, got %v, %v", log, err)
	}
	if err := log.Write(ShotRecord{Tick: 1}); err != nil {
		t.Errorf("nil log should discard, got %v", err)
	}
	if log.Count() != 0 {
		t.Errorf("nil log should count nothing")
	}
	if err := log.Close(); err != nil {
		t.Errorf("nil close should succeed, got %v", err)
	}
}
