package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/scrubsync/scrubsync/internal/mirror"
)

var (
	flagVerbose    bool
	flagListFile   string
	flagExcludes   []string
	flagNoFixLinks bool
	flagSkipHidden bool
	flagChecksum   bool
	flagNoLock     bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirsync [flags] <src> <dst>",
		Short: "Mirror a source directory tree into a destination",
		Long: `dirsync keeps a destination directory up to date with a source tree.

Entries present only in the source are copied (regular files atomically, via
temp-and-rename), entries present only in the destination are removed, and
entries that differ by mtime+size, symlink target, or node type are updated.
Absolute symlinks pointing back into the source tree are repaired to relative
links inside the destination unless --nofix-symlinks is given.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSync,
	}

	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging on initial copy")
	cmd.Flags().StringVarP(&flagListFile, "listfile", "l", "", "write the list of added and changed paths to this file")
	cmd.Flags().StringArrayVarP(&flagExcludes, "exclude", "x", nil, "exclude pattern (doublestar glob; repeatable)")
	cmd.Flags().BoolVar(&flagNoFixLinks, "nofix-symlinks", false, "skip repairing absolute symlinks into the source tree")
	cmd.Flags().BoolVar(&flagSkipHidden, "skip-hidden", false, "skip entries starting with \".\"")
	cmd.Flags().BoolVar(&flagChecksum, "checksum", false, "compare regular files by content hash instead of mtime+size")
	cmd.Flags().BoolVar(&flagNoLock, "no-lock", false, "do not serialize concurrent syncs of the destination")

	return cmd
}

func runSync(_ *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	if !flagNoLock {
		if err := os.MkdirAll(dst, 0755); err != nil {
			return err
		}
		lock := flock.New(filepath.Join(dst, mirror.LockFile))
		if err := lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s: %w", dst, err)
		}
		defer lock.Unlock()
	}

	fmt.Printf("Sync: %s -> %s\n", src, dst)
	opts := mirror.Options{
		VerboseInitial: flagVerbose,
		Excludes:       flagExcludes,
		SkipHidden:     flagSkipHidden,
		Checksum:       flagChecksum,
		ListFile:       flagListFile,
		Out:            os.Stdout,
	}
	if _, err := mirror.Sync(src, dst, opts); err != nil {
		return err
	}
	if !flagNoFixLinks {
		if _, err := mirror.FixSymlinks(dst, src, os.Stdout); err != nil {
			return err
		}
	}
	fmt.Println("Done.")
	return nil
}
