package mirror

import (
	"fmt"
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// excluder matches relative paths against the configured exclude patterns
// using doublestar semantics. Patterns are validated up front so a bad
// pattern fails the run instead of silently matching nothing.
type excluder struct {
	patterns []string
}

func newExcluder(opts Options) (*excluder, error) {
	patterns := opts.Excludes
	if opts.SkipHidden {
		patterns = append([]string{".*", "**/.*"}, patterns...)
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return &excluder{patterns: patterns}, nil
}

func (e *excluder) match(rel string) bool {
	rp := filepath.ToSlash(rel)
	for _, p := range e.patterns {
		if ok, _ := doublestar.Match(p, rp); ok {
			return true
		}
	}
	return false
}
