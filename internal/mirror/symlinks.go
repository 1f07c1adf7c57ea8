package mirror

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FixSymlinks rewrites absolute symlinks under dst that resolve inside the
// source tree so they point at the equivalent entry in the destination tree,
// as a relative link. Returns the number of links rewritten.
func FixSymlinks(dst, src string, out io.Writer) (int, error) {
	if out == nil {
		out = io.Discard
	}
	canonicalSrc, err := weaklyCanonical(src)
	if err != nil {
		return 0, err
	}
	canonicalDst, err := weaklyCanonical(dst)
	if err != nil {
		return 0, err
	}

	fixed := 0
	err = filepath.WalkDir(dst, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		target, err := os.Readlink(p)
		if err != nil {
			return nil
		}
		if !filepath.IsAbs(target) {
			return nil
		}
		targetCanon, err := weaklyCanonical(target)
		if err != nil {
			return nil
		}
		inside, err := filepath.Rel(canonicalSrc, targetCanon)
		if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
			return nil
		}

		dstTarget := filepath.Join(canonicalDst, inside)
		rel, err := filepath.Rel(filepath.Dir(p), dstTarget)
		if err != nil {
			return nil
		}
		if err := os.Remove(p); err != nil {
			return nil
		}
		if err := os.Symlink(rel, p); err != nil {
			return err
		}
		fmt.Fprintf(out, "[fixlink] %s -> %s\n", p, rel)
		fixed++
		return nil
	})
	return fixed, err
}

// weaklyCanonical resolves symlinks in the longest existing prefix of p and
// lexically appends the remainder, so nonexistent paths still canonicalize.
func weaklyCanonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	resolved := abs
	tail := ""
	for {
		if r, err := filepath.EvalSymlinks(resolved); err == nil {
			return filepath.Clean(filepath.Join(r, tail)), nil
		}
		parent := filepath.Dir(resolved)
		if parent == resolved {
			return filepath.Clean(abs), nil
		}
		tail = filepath.Join(filepath.Base(resolved), tail)
		resolved = parent
	}
}
