// Package pathform expands a path-like string into the set of equivalent
// spellings a source tree might use to reference the same filesystem object.
package pathform

import (
	"os"
	"path/filepath"
)

// Expand returns the recognized forms of input, original spelling first.
// When input names an existing regular file, symlink, or directory, the
// absolute, canonical (symlink-resolved), and lexically-normalized forms
// are appended, each only if distinct from the forms already collected.
// Filesystem errors never abort expansion; whatever forms were computed
// before the failure are returned (minimum: the original string).
func Expand(input string) []string {
	if input == "" {
		return nil
	}
	forms := []string{input}

	fi, err := os.Lstat(input)
	if err != nil {
		return forms
	}
	if !fi.Mode().IsRegular() && fi.Mode()&os.ModeSymlink == 0 && !fi.IsDir() {
		return forms
	}

	add := func(s string) {
		if s == "" {
			return
		}
		for _, f := range forms {
			if f == s {
				return
			}
		}
		forms = append(forms, s)
	}

	if abs, err := filepath.Abs(input); err == nil {
		add(abs)
	}
	if canon, err := filepath.EvalSymlinks(input); err == nil {
		// EvalSymlinks keeps a relative result relative; the canonical
		// form matches the original tool only when fully resolved.
		if abs, err := filepath.Abs(canon); err == nil {
			add(abs)
		}
	}
	add(filepath.Clean(input))

	return forms
}
