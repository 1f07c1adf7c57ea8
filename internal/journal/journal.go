// Package journal appends per-run scrub records to a JSONL log so build
// scripts can audit what was cleared or replaced and where.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/scrubsync/scrubsync/internal/engine"
	"github.com/scrubsync/scrubsync/internal/scrub"
)

// FileResult is one file's outcome in a run record.
type FileResult struct {
	Path  string `json:"path"`
	Op    string `json:"op"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// RunRecord describes one scrub invocation.
type RunRecord struct {
	RunID       string       `json:"run_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Targets     []string     `json:"targets"`
	Replacement string       `json:"replacement,omitempty"`
	ClearByte   string       `json:"clear_byte"`
	Files       []FileResult `json:"files"`
	Duration    string       `json:"duration"`
}

// NewRecord assembles a RunRecord from a drained ledger.
func NewRecord(targets []string, replacement string, clearByte byte, entries []engine.Entry, d time.Duration) RunRecord {
	rec := RunRecord{
		RunID:       uuid.New().String(),
		Timestamp:   time.Now(),
		Targets:     targets,
		Replacement: replacement,
		ClearByte:   fmt.Sprintf("0x%02x", clearByte),
		Duration:    d.String(),
	}
	for _, e := range entries {
		fr := FileResult{Path: e.Path, Count: e.Outcome.Count}
		switch e.Outcome.Op {
		case scrub.OpCleared:
			fr.Op = "cleared"
		case scrub.OpReplaced:
			fr.Op = "replaced"
		default:
			fr.Op = "none"
		}
		if e.Outcome.Err != nil {
			fr.Error = e.Outcome.Err.Error()
		}
		rec.Files = append(rec.Files, fr)
	}
	return rec
}

// Append writes the record to the JSONL journal at path, creating it with
// owner-only permissions if missing.
func Append(path string, rec RunRecord) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("failed to write journal record: %w", err)
	}
	return nil
}

// LoadHistory reads all records from the journal at path, newest first.
func LoadHistory(path string) ([]RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec RunRecord
		if err := dec.Decode(&rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
