package scrub

import "fmt"

// OpenError reports a file that could not be read. It is distinct from a
// zero match count: an unreadable file was never examined at all.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("unable to open %s: %v", e.Path, e.Err) }

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports that mutated content could not be persisted. The
// in-memory scrub succeeded, so the on-disk state is indeterminate;
// processing of other files continues regardless.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write updated contents for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// LoopGuardError rejects a text scrub whose replacement string contains one
// of the targets as a substring. A forward scan over such input could
// re-match text it just inserted, so the whole file is refused unmodified.
type LoopGuardError struct {
	Target      string
	Replacement string
}

func (e *LoopGuardError) Error() string {
	return fmt.Sprintf("replacement %q contains target %q: refusing to scrub", e.Replacement, e.Target)
}
