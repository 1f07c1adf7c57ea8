// Package mirror keeps a destination directory tree synchronized with a
// source tree: it diffs the two, copies added and changed entries (files
// atomically, via temp-and-rename), removes stale ones, and repairs
// absolute symlinks that point back into the source tree.
package mirror

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LockFile is the flock target a sync holds inside the destination tree.
// It and in-flight temp copies are bookkeeping, not content: the diff never
// sees them, so a sync cannot remove the lock it is running under.
const LockFile = ".dirsync.lock"

func internalEntry(base string) bool {
	return base == LockFile || strings.HasPrefix(base, tmpPrefix)
}

// Options control a sync run.
type Options struct {
	// VerboseInitial logs per-entry actions even on the first population of
	// an empty destination, which is otherwise silent.
	VerboseInitial bool
	// Excludes are doublestar patterns matched against slash-separated
	// relative paths: `*` matches within a segment, `?` one rune, `[...]`
	// character classes (with `^`/`!` negation), `**` any number of segments.
	Excludes []string
	// SkipHidden excludes dot-prefixed entries at any depth.
	SkipHidden bool
	// Checksum compares regular files by content hash instead of mtime+size.
	Checksum bool
	// ListFile, when set, receives the canonical destination paths of every
	// added or changed entry, one per line.
	ListFile string
	// Out receives action lines; defaults to io.Discard.
	Out io.Writer
}

// Stats counts the actions a sync performed.
type Stats struct {
	Added   int
	Removed int
	Changed int
}

// Sync brings dst up to date with src and returns action counts.
func Sync(src, dst string, opts Options) (Stats, error) {
	var stats Stats
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	excl, err := newExcluder(opts)
	if err != nil {
		return stats, err
	}

	srcs, err := gatherPaths(src, excl)
	if err != nil {
		return stats, fmt.Errorf("scan source %s: %w", src, err)
	}

	dsts := map[string]bool{}
	if _, err := os.Lstat(dst); err == nil {
		dsts, err = gatherPaths(dst, excl)
		if err != nil {
			return stats, fmt.Errorf("scan destination %s: %w", dst, err)
		}
	}
	initialCopy := len(dsts) == 0

	var add, rm, mod []string
	for p := range srcs {
		if !dsts[p] {
			add = append(add, p)
		} else if modified(filepath.Join(src, p), filepath.Join(dst, p), opts.Checksum) {
			mod = append(mod, p)
		}
	}
	for p := range dsts {
		if !srcs[p] {
			rm = append(rm, p)
		}
	}
	// Lexicographic order creates parents before children and keeps output
	// deterministic.
	sort.Strings(add)
	sort.Strings(rm)
	sort.Strings(mod)

	canonicalDst, err := weaklyCanonical(dst)
	if err != nil {
		canonicalDst, _ = filepath.Abs(dst)
	}
	var listPaths []string
	record := func(p string) {
		if opts.ListFile != "" {
			listPaths = append(listPaths, filepath.Join(canonicalDst, p))
		}
	}
	logAction := func(format string, args ...any) {
		if !initialCopy || opts.VerboseInitial {
			fmt.Fprintf(out, format, args...)
		}
	}

	for _, p := range rm {
		dp := filepath.Join(dst, p)
		_ = os.RemoveAll(dp)
		fmt.Fprintf(out, "[rm] %s\n", dp)
		stats.Removed++
	}

	// Changed entries apply before added ones: a node-type change (a file
	// becoming a directory) must be resolved before new children are
	// created beneath it.
	for _, p := range mod {
		sp, dp := filepath.Join(src, p), filepath.Join(dst, p)
		fi, err := os.Lstat(sp)
		if err != nil {
			continue
		}
		// A node-type change leaves a destination entry the copy below
		// cannot overwrite; clear it first instead of aborting the run.
		switch {
		case fi.Mode().IsRegular():
			if dfi, err := os.Lstat(dp); err == nil && !dfi.Mode().IsRegular() {
				_ = os.RemoveAll(dp)
			}
			if err := atomicCopyFile(sp, dp); err != nil {
				return stats, err
			}
			copyPerms(sp, dp)
			copyMtime(dp, sp)
			fmt.Fprintf(out, "[chg] file %s\n", dp)
		case fi.Mode()&os.ModeSymlink != 0:
			tgt, err := os.Readlink(sp)
			if err != nil {
				continue
			}
			_ = os.RemoveAll(dp)
			if err := os.Symlink(tgt, dp); err != nil {
				return stats, err
			}
			fmt.Fprintf(out, "[chg] link %s -> %s\n", dp, tgt)
		case fi.IsDir():
			if dfi, err := os.Lstat(dp); err == nil && !dfi.IsDir() {
				_ = os.RemoveAll(dp)
				if err := os.MkdirAll(dp, 0755); err != nil {
					return stats, err
				}
			}
			copyPerms(sp, dp)
			fmt.Fprintf(out, "[chg] dir %s\n", dp)
		default:
			continue
		}
		stats.Changed++
		record(p)
	}

	for _, p := range add {
		sp, dp := filepath.Join(src, p), filepath.Join(dst, p)
		fi, err := os.Lstat(sp)
		if err != nil {
			fmt.Fprintf(out, "Warn: %v\n", err)
			continue
		}
		switch {
		case fi.IsDir():
			if err := os.MkdirAll(dp, 0755); err != nil {
				return stats, err
			}
			copyPerms(sp, dp)
			logAction("[add] dir %s\n", dp)
		case fi.Mode()&os.ModeSymlink != 0:
			tgt, err := os.Readlink(sp)
			if err != nil {
				fmt.Fprintf(out, "Warn: %v\n", err)
				continue
			}
			if err := os.MkdirAll(filepath.Dir(dp), 0755); err != nil {
				return stats, err
			}
			_ = os.Remove(dp)
			if err := os.Symlink(tgt, dp); err != nil {
				return stats, err
			}
			logAction("[add] link %s -> %s\n", dp, tgt)
		case fi.Mode().IsRegular():
			if err := atomicCopyFile(sp, dp); err != nil {
				return stats, err
			}
			copyPerms(sp, dp)
			copyMtime(dp, sp)
			logAction("[add] file %s\n", dp)
		default:
			continue
		}
		stats.Added++
		record(p)
	}

	if opts.ListFile != "" {
		if err := writeListFile(opts.ListFile, listPaths); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// gatherPaths collects every relative path under root, recursing into real
// directories only: a symlinked directory is recorded as an entry but never
// followed.
func gatherPaths(root string, excl *excluder) (map[string]bool, error) {
	out := map[string]bool{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		if internalEntry(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if excl.match(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		out[rel] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// modified reports whether the destination entry is out of date relative to
// the source. Regular files compare by mtime+size (or content hash in
// checksum mode), symlinks by target, and everything else by node type.
func modified(sp, dp string, checksum bool) bool {
	sfi, serr := os.Lstat(sp)
	dfi, derr := os.Lstat(dp)
	if serr != nil || derr != nil {
		return true
	}

	sReg, dReg := sfi.Mode().IsRegular(), dfi.Mode().IsRegular()
	sLink, dLink := sfi.Mode()&os.ModeSymlink != 0, dfi.Mode()&os.ModeSymlink != 0
	sDir, dDir := sfi.IsDir(), dfi.IsDir()

	switch {
	case sReg && dReg:
		if checksum {
			sh, serr := hashFile(sp)
			dh, derr := hashFile(dp)
			return serr != nil || derr != nil || sh != dh
		}
		return sfi.Size() != dfi.Size() || !sfi.ModTime().Equal(dfi.ModTime())
	case sLink && dLink:
		stgt, serr := os.Readlink(sp)
		dtgt, derr := os.Readlink(dp)
		return serr != nil || derr != nil || stgt != dtgt
	default:
		return sReg != dReg || sDir != dDir || sLink != dLink
	}
}

func writeListFile(path string, paths []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't open list file %s: %w", path, err)
	}
	defer f.Close()
	for _, p := range paths {
		if _, err := fmt.Fprintln(f, p); err != nil {
			return err
		}
	}
	return nil
}
