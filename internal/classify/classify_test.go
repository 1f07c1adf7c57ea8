package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsBinary_NulByte(t *testing.T) {
	if !IsBinary([]byte("plain text\x00more")) {
		t.Fatal("NUL byte must classify as binary")
	}
}

func TestIsBinary_Empty(t *testing.T) {
	if IsBinary(nil) {
		t.Fatal("empty sample must classify as text")
	}
}

func TestIsBinary_PlainText(t *testing.T) {
	sample := []byte("The quick brown fox\njumps over\tthe lazy dog\r\n\f")
	if IsBinary(sample) {
		t.Fatal("printable ASCII with whitespace controls must be text")
	}
}

func TestIsBinary_UTF8LeadBytesAccepted(t *testing.T) {
	// Multibyte runes: lead bytes are whitelisted, continuation bytes
	// (0x80-0xBF) count as non-text, so keep them under 10%.
	sample := append(bytes.Repeat([]byte("abcdefghij"), 10), []byte("caf\xc3\xa9")...)
	if IsBinary(sample) {
		t.Fatal("mostly-ASCII UTF-8 must be text")
	}
}

func TestIsBinary_NontextRatio(t *testing.T) {
	// 2 control bytes out of 12 sampled is over the 10% threshold.
	sample := []byte("abcdefghij\x01\x02")
	if !IsBinary(sample) {
		t.Fatalf("expected binary for %d%% non-text", 2*100/len(sample))
	}
	// 1 out of 11 is under it.
	sample = []byte("abcdefghij\x01")
	if IsBinary(sample) {
		t.Fatal("expected text for sub-threshold non-text ratio")
	}
}

func TestIsBinary_OnlySamplesPrefix(t *testing.T) {
	sample := append(bytes.Repeat([]byte{'a'}, SampleSize), 0x00)
	if IsBinary(sample) {
		t.Fatal("NUL beyond the sample window must not classify as binary")
	}
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "a.txt")
	bin := filepath.Join(dir, "a.bin")
	if err := os.WriteFile(txt, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bin, []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}, 0644); err != nil {
		t.Fatal(err)
	}

	if got, err := Sniff(txt); err != nil || got {
		t.Fatalf("Sniff(%s) = %v, %v; want text", txt, got, err)
	}
	if got, err := Sniff(bin); err != nil || !got {
		t.Fatalf("Sniff(%s) = %v, %v; want binary", bin, got, err)
	}
	if _, err := Sniff(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSniff_EmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Sniff(p)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Fatal("empty file must classify as text")
	}
}
