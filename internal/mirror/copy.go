package mirror

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
)

// tmpPrefix names in-flight copies; gatherPaths skips it so an interrupted
// run's leftovers are never mirrored back.
const tmpPrefix = ".dirsync_tmp_"

// atomicCopyFile copies src to dst by writing a temp file in dst's directory
// and renaming it into place, so readers never observe a half-written file.
func atomicCopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), tmpPrefix+"*")
	if err != nil {
		return fmt.Errorf("unable to create temp file in %s: %w", filepath.Dir(dst), err)
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error renaming %s to %s: %w", tmpName, dst, err)
	}
	return nil
}

// copyPerms propagates src's permission bits onto dst. Best effort.
func copyPerms(src, dst string) {
	fi, err := os.Stat(src)
	if err != nil {
		return
	}
	_ = os.Chmod(dst, fi.Mode().Perm())
}

// copyMtime propagates src's modification time onto dst. Best effort.
func copyMtime(dst, src string) {
	fi, err := os.Stat(src)
	if err != nil {
		return
	}
	_ = os.Chtimes(dst, fi.ModTime(), fi.ModTime())
}

// hashFile returns the xxhash digest of the file's content.
func hashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
