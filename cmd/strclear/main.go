package main

import (
	"fmt"
	"os"
)

// exitCode carries the process exit status out of command execution: 1 when
// any file failed (or when -B classified the input as binary), 0 otherwise.
var exitCode int

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}
