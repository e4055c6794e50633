package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLog_CreatesFile(t *testing.T) {
	path := LogPath(t.TempDir())

	Log(path, Entry{Operation: "encrypt", Stage: "prod", Files: []string{"secrets.prod.yml.encrypted"}})

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	path := LogPath(t.TempDir())

	Log(path, Entry{Operation: "encrypt", Stage: "dev"})
	Log(path, Entry{Operation: "decrypt", Stage: "dev"})
	Log(path, Entry{Operation: "encrypt", Stage: "prod"})

	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[1].Operation != "decrypt" {
		t.Errorf("Expected second entry to be decrypt, got %s", entries[1].Operation)
	}
}

func TestLog_FillsTimestampAndID(t *testing.T) {
	path := LogPath(t.TempDir())
	Log(path, Entry{Operation: "encrypt", Stage: "prod"})

	entries, err := ReadEntries(path)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected one entry, got %d (%v)", len(entries), err)
	}

	if _, err := time.Parse(timestampLayout, entries[0].Timestamp); err != nil {
		t.Errorf("Expected timestamp in %s layout, got %q: %v", timestampLayout, entries[0].Timestamp, err)
	}
	if _, err := uuid.Parse(entries[0].ID); err != nil {
		t.Errorf("Expected a UUID id, got %q", entries[0].ID)
	}
}

func TestLog_UnwritableLocationIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", LogFileName)

	// Must not panic or create the directory.
	Log(path, Entry{Operation: "encrypt"})

	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Errorf("Expected directory not to be created, got: %v", err)
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("decrypt", "staging")

	if entry.Operation != "decrypt" || entry.Stage != "staging" {
		t.Errorf("Unexpected entry: %+v", entry)
	}
	if entry.ID == "" {
		t.Error("Expected an id to be assigned")
	}
	if other := NewEntry("decrypt", "staging"); other.ID == entry.ID {
		t.Error("Expected distinct ids for distinct entries")
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), LogFileName))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := strings.Join([]string{
		`{"ts":"2026-01-01T00:00:00.000000Z","id":"a","op":"encrypt","stage":"prod"}`,
		`not json`,
		``,
		`{"ts":"2026-01-02T00:00:00.000000Z","id":"b","op":"decrypt","stage":"dev"}`,
		`{"ts":"2026-01-03T00:00:00.000000Z","id":"c","op":"enc`,
	}, "\n")

	entries := ParseEntries([]byte(data))
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestFilter(t *testing.T) {
	entries := []Entry{
		{ID: "1", Operation: "encrypt", Stage: "prod"},
		{ID: "2", Operation: "decrypt", Stage: "prod"},
		{ID: "3", Operation: "encrypt", Stage: "dev"},
	}

	tests := []struct {
		name     string
		stage    string
		op       string
		expected int
	}{
		{"All", "", "", 3},
		{"ByStage", "prod", "", 2},
		{"ByOp", "", "encrypt", 2},
		{"ByBoth", "prod", "decrypt", 1},
		{"NoMatch", "qa", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(entries, tt.stage, tt.op); len(got) != tt.expected {
				t.Errorf("Expected %d entries, got %d", tt.expected, len(got))
			}
		})
	}
}
