package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/stagecrypt/internal/utils"
)

// LogFileName is the audit log's name inside the secrets directory.
const LogFileName = ".stagecrypt-audit.jsonl"

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string   `json:"ts"`
	ID        string   `json:"id"`
	User      string   `json:"user,omitempty"`
	Host      string   `json:"host,omitempty"`
	Operation string   `json:"op"`
	Stage     string   `json:"stage"`
	Files     []string `json:"files,omitempty"`
	Format    string   `json:"format,omitempty"`
}

// NewEntry returns an entry for op on stage with identity fields filled in.
func NewEntry(op, stage string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Operation: op,
		Stage:     stage,
	}
	if user, err := utils.GetUsername(); err == nil {
		entry.User = user
	}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}
	return entry
}

// LogPath returns the audit log path for a secrets directory.
func LogPath(secretsDir string) string {
	return filepath.Join(secretsDir, LogFileName)
}

// Log appends an entry to the audit log at path.
// If logging fails the entry is dropped; it never returns an error.
func Log(path string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampLayout)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// #nosec G302 G304 -- the audit log is meant to be shared with the team
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log at path.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Filter returns the entries matching stage and op. Empty values match all.
func Filter(entries []Entry, stage, op string) []Entry {
	var out []Entry
	for _, e := range entries {
		if stage != "" && e.Stage != stage {
			continue
		}
		if op != "" && e.Operation != op {
			continue
		}
		out = append(out, e)
	}
	return out
}
