// Package classify labels file content as binary or text using a
// prefix-sampling heuristic. The classification is statistical, not a
// content-type oracle: a NUL byte anywhere in the sample is treated as
// proof of binary data, and otherwise the ratio of non-text bytes decides.
package classify

import (
	"io"
	"os"
)

// SampleSize is the number of leading bytes examined per file.
const SampleSize = 4096

// nontextThreshold is the fraction of non-text bytes above which a
// NUL-free sample is still classified as binary.
const nontextThreshold = 0.10

// IsBinary reports whether the sampled prefix looks like binary content.
// Any NUL byte classifies immediately. Otherwise bytes outside printable
// ASCII, common whitespace controls, and UTF-8 lead bytes (0xC2-0xF4)
// count as non-text; the sample is binary when they exceed 10% of the
// bytes examined. An empty sample is text.
func IsBinary(sample []byte) bool {
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	nontext := 0
	for _, c := range sample {
		if c == 0 {
			return true
		}
		if c >= 32 && c <= 126 {
			continue
		}
		switch c {
		case '\n', '\r', '\t', '\f':
			continue
		}
		if c >= 0xC2 && c <= 0xF4 {
			continue
		}
		nontext++
	}
	if len(sample) == 0 {
		return false
	}
	return float64(nontext)/float64(len(sample)) > nontextThreshold
}

// Sniff reads the prefix of the file at path and classifies it.
func Sniff(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, SampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return IsBinary(buf[:n]), nil
}
