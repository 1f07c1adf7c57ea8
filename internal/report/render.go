// Package report renders per-file scrub tallies for the console.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/scrubsync/scrubsync/internal/engine"
)

// PrintOptions shape the verbose summary output.
type PrintOptions struct {
	NoColor         bool
	Table           bool
	TargetString    string
	ExpandedTargets []string
	ClearByte       byte
	Replacement     string
	Duration        time.Duration
}

// PrintSummary writes the run summary: a header describing the operation,
// then one line per file with a nonzero result or an error. Files with a
// zero net count produce no line. When nothing at all happened, a single
// "No matches found" note is printed instead.
func PrintSummary(w io.Writer, entries []engine.Entry, opts PrintOptions) {
	didOp := false
	for _, e := range entries {
		if e.Outcome.Changed() || e.Outcome.Err != nil {
			didOp = true
			break
		}
	}
	if !didOp {
		fmt.Fprintln(w, "No matches found")
		return
	}

	printHeader(w, opts)
	fmt.Fprintln(w, "----------Processed Paths-------")
	if opts.Table {
		printTable(w, entries)
	} else {
		printLines(w, entries, opts)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "\nScrub duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func printHeader(w io.Writer, opts PrintOptions) {
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "    Original target string: %s\n", opts.TargetString)
	if len(opts.ExpandedTargets) > 0 {
		fmt.Fprintln(w, "    Expanded path targets: ")
		for _, t := range opts.ExpandedTargets {
			if t == opts.TargetString {
				continue
			}
			fmt.Fprintf(w, "                  : %s\n", t)
		}
	}
	if opts.ClearByte != 0 {
		fmt.Fprintf(w, "            Clear char: %c\n", opts.ClearByte)
	}
	if opts.Replacement != "" {
		fmt.Fprintf(w, "    Replacement string: %s\n", opts.Replacement)
	}
}

func printLines(w io.Writer, entries []engine.Entry, opts PrintOptions) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	if opts.NoColor {
		green.DisableColor()
		yellow.DisableColor()
		red.DisableColor()
	}
	for _, e := range entries {
		o := e.Outcome
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "%s: %s: %v\n", e.Path, red.Sprint("error"), o.Err)
		case o.Signed() < 0:
			fmt.Fprintf(w, "%s: %s %d instances\n", e.Path, yellow.Sprint("cleared"), o.Count)
		case o.Signed() > 0:
			fmt.Fprintf(w, "%s: %s %d instances\n", e.Path, green.Sprint("replaced"), o.Count)
		}
	}
}

func printTable(w io.Writer, entries []engine.Entry) {
	tbl := tablewriter.NewTable(w)
	tbl.Header([]string{"Path", "Result", "Count"})
	for _, e := range entries {
		o := e.Outcome
		switch {
		case o.Err != nil:
			_ = tbl.Append([]string{e.Path, "error", o.Err.Error()})
		case o.Signed() < 0:
			_ = tbl.Append([]string{e.Path, "cleared", fmt.Sprintf("%d", o.Count)})
		case o.Signed() > 0:
			_ = tbl.Append([]string{e.Path, "replaced", fmt.Sprintf("%d", o.Count)})
		}
	}
	_ = tbl.Render()
}
