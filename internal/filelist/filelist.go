// Package filelist loads newline-delimited lists of file paths.
package filelist

import (
	"bufio"
	"fmt"
	"os"
)

// Load reads one path per line from the file at path. No quoting or escaping
// is recognized. Blank lines are skipped and duplicates removed, preserving
// first-seen order.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file list %s: %w", path, err)
	}
	defer f.Close()

	seen := map[string]bool{}
	var files []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		files = append(files, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read file list %s: %w", path, err)
	}
	return files, nil
}
