package engine

import (
	"sort"
	"sync"

	"github.com/scrubsync/scrubsync/internal/scrub"
)

// Ledger maps each processed file path to its scrub outcome. Each worker
// writes exactly one key it owns, so a coarse lock around insertion is all
// the coordination the contract needs. Readers must only look at the ledger
// after the pool has joined; Run enforces that barrier.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]scrub.Outcome
}

// Entry pairs a file path with its outcome for sorted reporting.
type Entry struct {
	Path    string
	Outcome scrub.Outcome
}

func newLedger(n int) *Ledger {
	return &Ledger{entries: make(map[string]scrub.Outcome, n)}
}

func (l *Ledger) record(path string, o scrub.Outcome) {
	l.mu.Lock()
	l.entries[path] = o
	l.mu.Unlock()
}

// Get returns the outcome recorded for path.
func (l *Ledger) Get(path string) (scrub.Outcome, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.entries[path]
	return o, ok
}

// Len returns the number of recorded files.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Snapshot returns all entries sorted by path.
func (l *Ledger) Snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, 0, len(l.entries))
	for p, o := range l.entries {
		out = append(out, Entry{Path: p, Outcome: o})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Failed reports whether any file recorded an error. The run's exit status
// reflects this, independent of how many files were merely unchanged.
func (l *Ledger) Failed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range l.entries {
		if o.Err != nil {
			return true
		}
	}
	return false
}

// Changed reports whether any file was actually modified.
func (l *Ledger) Changed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range l.entries {
		if o.Changed() {
			return true
		}
	}
	return false
}
