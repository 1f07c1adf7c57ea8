package scrub

// Op says what a scrub pass did to one file. A file is only ever cleared
// or only ever replaced, never both: binary files are always cleared, and
// a text file is cleared exactly when the replacement string is empty.
type Op int

const (
	// OpNone means the file was skipped by a mode filter or had no matches.
	OpNone Op = iota
	// OpCleared means matched occurrences were overwritten or removed.
	OpCleared
	// OpReplaced means matched occurrences were substituted.
	OpReplaced
)

// Outcome is the tagged per-file result. It replaces the sign-overloaded
// counter of older tooling so that an error is never conflated with the
// numeric zero meaning "no matches".
type Outcome struct {
	Op    Op
	Count int
	Err   error
}

// Cleared builds an outcome for n cleared occurrences.
func Cleared(n int) Outcome { return Outcome{Op: OpCleared, Count: n} }

// Replaced builds an outcome for n replaced occurrences.
func Replaced(n int) Outcome { return Outcome{Op: OpReplaced, Count: n} }

// Failed builds an error outcome.
func Failed(err error) Outcome { return Outcome{Err: err} }

// Changed reports whether the file was modified.
func (o Outcome) Changed() bool { return o.Err == nil && o.Op != OpNone && o.Count > 0 }

// Signed renders the count in the legacy convention: negative for cleared
// occurrences, positive for replaced ones, zero otherwise.
func (o Outcome) Signed() int {
	switch o.Op {
	case OpCleared:
		return -o.Count
	case OpReplaced:
		return o.Count
	}
	return 0
}
