package core

import (
	"encoding/json"
	"io"

	"github.com/scrubsync/scrubsync/internal/scrub"
)

// entryJSON is the wire shape for a ledger entry: the tagged outcome is
// flattened so pipelines never have to interpret a signed count.
type entryJSON struct {
	Path  string `json:"path"`
	Op    string `json:"op"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// MarshalEntries pretty-prints ledger entries as JSON for humans or pipelines.
func MarshalEntries(w io.Writer, entries []Entry) error {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		ej := entryJSON{Path: e.Path, Count: e.Outcome.Count}
		switch e.Outcome.Op {
		case scrub.OpCleared:
			ej.Op = "cleared"
		case scrub.OpReplaced:
			ej.Op = "replaced"
		default:
			ej.Op = "none"
		}
		if e.Outcome.Err != nil {
			ej.Error = e.Outcome.Err.Error()
		}
		out = append(out, ej)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
