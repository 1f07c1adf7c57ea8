// Package targets builds the ordered set of strings a scrub run operates on.
package targets

import (
	"sort"

	"github.com/scrubsync/scrubsync/internal/pathform"
)

// Set is a deduplicated collection of target strings ordered longest first,
// ties broken by descending lexicographic order. The ordering is a
// correctness contract: scanning longer targets first prevents a short
// target from shadowing a longer one that contains it at the same position.
type Set struct {
	strs []string
}

// Build combines the raw strings (or, when expandPaths is set, the
// path-form expansion of each) into one Set. Empty strings are removed;
// an empty target is a configuration error at the CLI boundary, never a
// wildcard here.
func Build(raw []string, expandPaths bool) Set {
	seen := map[string]bool{}
	var strs []string
	for _, r := range raw {
		if r == "" {
			continue
		}
		forms := []string{r}
		if expandPaths {
			forms = pathform.Expand(r)
		}
		for _, f := range forms {
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			strs = append(strs, f)
		}
	}
	sort.Slice(strs, func(i, j int) bool {
		if len(strs[i]) != len(strs[j]) {
			return len(strs[i]) > len(strs[j])
		}
		return strs[i] > strs[j]
	})
	return Set{strs: strs}
}

// Strings returns the targets in match-priority order.
func (s Set) Strings() []string { return s.strs }

// Len returns the number of targets.
func (s Set) Len() int { return len(s.strs) }

// Empty reports whether the set has no targets.
func (s Set) Empty() bool { return len(s.strs) == 0 }
