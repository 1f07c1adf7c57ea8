// Package scrub clears or replaces target strings inside file content.
// Binary content is nulled in place so embedded offsets stay valid; text
// content is spliced with a replacement string under a loop guard.
package scrub

import (
	"bytes"
	"strings"

	"github.com/scrubsync/scrubsync/internal/targets"
)

// ClearBytes overwrites every occurrence of each target with the clear byte,
// in Set order, and returns the total match count. The buffer is mutated in
// place and its length never changes. Matches of the same target do not
// overlap: the scan cursor advances past each match before searching again.
func ClearBytes(buf []byte, set targets.Set, clear byte) int {
	total := 0
	for _, t := range set.Strings() {
		pat := []byte(t)
		pos := 0
		for pos <= len(buf)-len(pat) {
			i := bytes.Index(buf[pos:], pat)
			if i < 0 {
				break
			}
			start := pos + i
			for j := range pat {
				buf[start+j] = clear
			}
			pos = start + len(pat)
			total++
		}
	}
	return total
}

// ReplaceText substitutes every occurrence of each target with replacement,
// in Set order, and returns the new content and total match count.
//
// Each target is scanned left to right; after a splice the scan resumes
// strictly past the inserted replacement, so a target never re-matches text
// it just produced. Targets are processed sequentially over the evolving
// content, which means a later target may legitimately match text inserted
// by an earlier one. That order dependence is the contract.
//
// A non-empty replacement containing any target as a substring is rejected
// with a LoopGuardError before any modification.
func ReplaceText(content string, set targets.Set, replacement string) (string, int, error) {
	if replacement != "" {
		for _, t := range set.Strings() {
			if strings.Contains(replacement, t) {
				return content, 0, &LoopGuardError{Target: t, Replacement: replacement}
			}
		}
	}
	count := 0
	for _, t := range set.Strings() {
		pos := 0
		for {
			i := strings.Index(content[pos:], t)
			if i < 0 {
				break
			}
			start := pos + i
			content = content[:start] + replacement + content[start+len(t):]
			pos = start + len(replacement)
			count++
		}
	}
	return content, count, nil
}
