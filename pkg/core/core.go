package core

import (
	"github.com/scrubsync/scrubsync/internal/engine"
	"github.com/scrubsync/scrubsync/internal/scrub"
	"github.com/scrubsync/scrubsync/internal/targets"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Ledger = engine.Ledger
type Entry = engine.Entry
type Outcome = scrub.Outcome
type TargetSet = targets.Set

// BuildTargets assembles the ordered target set for a scrub run, optionally
// expanding path-like targets into their equivalent filesystem spellings.
func BuildTargets(raw []string, expandPaths bool) TargetSet {
	return targets.Build(raw, expandPaths)
}

// Scrub is the stable entrypoint for other programs: it processes every
// file exactly once across a worker pool and returns the drained ledger.
func Scrub(files []string, set TargetSet, cfg Config) *Ledger {
	return engine.Run(files, set, cfg)
}
