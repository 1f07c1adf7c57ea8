package scrub

import (
	"os"

	"github.com/scrubsync/scrubsync/internal/classify"
	"github.com/scrubsync/scrubsync/internal/targets"
)

// Options control how one file is scrubbed.
type Options struct {
	// ClearByte overwrites matched bytes in binary content (and stands in
	// for the empty replacement in reporting). Defaults to NUL.
	ClearByte byte
	// Replacement substitutes matches in text content. Empty means clear.
	Replacement string
	// BinaryOnly skips text files; TextOnly skips binary files.
	BinaryOnly bool
	TextOnly   bool
}

// ProcessFile reads, classifies, and scrubs a single file. The file is
// rewritten only when at least one match was found, so untouched files keep
// their content and timestamps. Binary files are always cleared; text files
// are cleared when Replacement is empty and substituted otherwise. All
// failures are returned in the Outcome, never panicked or escalated.
func ProcessFile(path string, set targets.Set, opts Options) Outcome {
	fi, err := os.Stat(path)
	if err != nil {
		return Failed(&OpenError{Path: path, Err: err})
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Failed(&OpenError{Path: path, Err: err})
	}

	// Classified once per file, from the leading sample only.
	binary := classify.IsBinary(data)
	if binary && opts.TextOnly {
		return Outcome{}
	}
	if !binary && opts.BinaryOnly {
		return Outcome{}
	}

	if binary {
		n := ClearBytes(data, set, opts.ClearByte)
		if n == 0 {
			return Outcome{}
		}
		if err := os.WriteFile(path, data, fi.Mode().Perm()); err != nil {
			return Failed(&WriteError{Path: path, Err: err})
		}
		return Cleared(n)
	}

	out, n, err := ReplaceText(string(data), set, opts.Replacement)
	if err != nil {
		return Failed(err)
	}
	if n == 0 {
		return Outcome{}
	}
	if err := os.WriteFile(path, []byte(out), fi.Mode().Perm()); err != nil {
		return Failed(&WriteError{Path: path, Err: err})
	}
	if opts.Replacement == "" {
		return Cleared(n)
	}
	return Replaced(n)
}
