package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/scrubsync/scrubsync/internal/classify"
	"github.com/scrubsync/scrubsync/internal/config"
	"github.com/scrubsync/scrubsync/internal/engine"
	"github.com/scrubsync/scrubsync/internal/filelist"
	"github.com/scrubsync/scrubsync/internal/journal"
	"github.com/scrubsync/scrubsync/internal/pathform"
	"github.com/scrubsync/scrubsync/internal/report"
	"github.com/scrubsync/scrubsync/internal/targets"
)

var (
	flagBinaryTest bool
	flagTextOnly   bool
	flagBinaryOnly bool
	flagFileList   string
	flagClearChar  string
	flagPaths      bool
	flagVerbose    bool
	flagThreads    int
	flagTable      bool
	flagJournal    string
	flagNoColor    bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strclear [flags] <file> <target_str> [replacement_str]",
		Short: "Clear or replace strings in files",
		Long: `strclear clears or replaces strings in files.

Given a binary file and a string, occurrences of the string are overwritten
in place with null chars (or a different character given by --clear-char).
Given a text file, a target string and an optional replacement string, all
occurrences of the target are replaced (or removed when no replacement is
supplied).

strclear -B <filename>
strclear <filename> <target_str> [replacement_str]
strclear -f <filelist> <target_str> [replacement_str]

With -p, a target string naming an existing file or directory is expanded
into all recognized forms of that path: the original spelling, its absolute
form, its canonical (symlink-resolved) form, and its normalized form. Both
relative and absolute references to the same file are then processed.`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScrub,
	}

	cmd.Flags().BoolVarP(&flagBinaryTest, "is-binary", "B", false, "test whether the file is binary (exit 1 if yes, 0 if no)")
	cmd.Flags().BoolVarP(&flagTextOnly, "text-only", "t", false, "skip inputs that are binary files")
	cmd.Flags().BoolVarP(&flagBinaryOnly, "binary-only", "b", false, "skip inputs that are text files")
	cmd.Flags().StringVarP(&flagFileList, "files", "f", "", "newline-delimited list of files to process")
	cmd.Flags().StringVar(&flagClearChar, "clear-char", "", "character used when clearing strings in files")
	cmd.Flags().BoolVarP(&flagPaths, "paths", "p", false, "expand a target path into all recognized forms for searching")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose reporting during processing")
	cmd.Flags().IntVar(&flagThreads, "threads", 0, "worker count (0 = hardware parallelism)")
	cmd.Flags().BoolVar(&flagTable, "table", false, "render the verbose summary as a table")
	cmd.Flags().StringVar(&flagJournal, "journal", "", "append a JSONL run record to this path")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")

	return cmd
}

func runScrub(_ *cobra.Command, args []string) error {
	if flagBinaryTest {
		if len(args) != 1 {
			return fmt.Errorf("-B accepts exactly one file path as input")
		}
		binary, err := classify.Sniff(args[0])
		if err != nil {
			return err
		}
		if binary {
			fmt.Println("binary")
			exitCode = 1
		} else {
			fmt.Println("text")
		}
		return nil
	}

	if flagBinaryOnly && flagTextOnly {
		return fmt.Errorf("can specify binary-only or text-only, not both")
	}

	// Layer configuration: CLI > local > global.
	cwd, _ := os.Getwd()
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(cwd); err == nil {
		lcfg = c
	}

	var files []string
	var target, replacement string
	if flagFileList != "" {
		if len(args) < 1 {
			return fmt.Errorf("when using a file list we need a target string and (optionally) a replacement string")
		}
		var err error
		files, err = filelist.Load(flagFileList)
		if err != nil {
			return err
		}
		target = args[0]
		if len(args) > 1 {
			replacement = args[1]
		}
	} else {
		if len(args) < 2 {
			return fmt.Errorf("we need a file, a target string and (optionally) a replacement string")
		}
		files = []string{args[0]}
		target = args[1]
		if len(args) > 2 {
			replacement = args[2]
		}
	}

	if target == "" {
		return fmt.Errorf("empty target string supplied")
	}
	binaryOnly := flagBinaryOnly || pickBool(false, lcfg.BinaryOnly, gcfg.BinaryOnly)
	textOnly := flagTextOnly || pickBool(false, lcfg.TextOnly, gcfg.TextOnly)
	if binaryOnly && replacement != "" {
		fmt.Fprintln(os.Stderr, "Warning: binary filtering clears with --clear-char; ignoring specified replacement string")
		replacement = ""
	}

	clearByte, err := parseClearChar(pickString(flagClearChar, lcfg.ClearChar, gcfg.ClearChar))
	if err != nil {
		return err
	}

	expandPaths := flagPaths || pickBool(false, lcfg.Paths, gcfg.Paths)
	set := targets.Build([]string{target}, expandPaths)

	cfg := engine.Config{
		Threads:     pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		ClearByte:   clearByte,
		Replacement: replacement,
		BinaryOnly:  binaryOnly,
		TextOnly:    textOnly,
	}
	started := time.Now()
	ledger := engine.Run(files, set, cfg)
	duration := time.Since(started)

	entries := ledger.Snapshot()

	// Per-file errors always surface, independent of verbosity.
	for _, e := range entries {
		if e.Outcome.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", e.Outcome.Err)
		}
	}

	if flagVerbose || pickBool(false, lcfg.Verbose, gcfg.Verbose) {
		opts := report.PrintOptions{
			NoColor:      flagNoColor || !stdoutIsTerminal(),
			Table:        flagTable || pickBool(false, lcfg.Table, gcfg.Table),
			TargetString: target,
			ClearByte:    clearByte,
			Replacement:  replacement,
			Duration:     duration,
		}
		if expandPaths {
			opts.ExpandedTargets = pathform.Expand(target)
		}
		report.PrintSummary(os.Stdout, entries, opts)
	}

	if jpath := pickString(flagJournal, lcfg.Journal, gcfg.Journal); jpath != "" {
		rec := journal.NewRecord(set.Strings(), replacement, clearByte, entries, duration)
		if err := journal.Append(jpath, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if ledger.Failed() {
		exitCode = 1
	}
	return nil
}

// parseClearChar accepts a single-byte clear character, the default NUL when
// empty, or the spellings \0 and 0x00-0xff.
func parseClearChar(s string) (byte, error) {
	switch {
	case s == "" || s == `\0`:
		return 0x00, nil
	case len(s) == 1:
		return s[0], nil
	case len(s) == 4 && (s[:2] == "0x" || s[:2] == "0X"):
		var b byte
		if _, err := fmt.Sscanf(s[2:], "%02x", &b); err != nil {
			return 0, fmt.Errorf("invalid clear char %q", s)
		}
		return b, nil
	default:
		return 0, fmt.Errorf("clear char must be a single character, got %q", s)
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
