package scrub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrubsync/scrubsync/internal/targets"
)

func writeTemp(t *testing.T, name string, body []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, body, 0644))
	return p
}

func TestProcessFile_TextClear(t *testing.T) {
	p := writeTemp(t, "a.txt", []byte("foo bar foo"))
	o := ProcessFile(p, targets.Build([]string{"foo"}, false), Options{})

	require.NoError(t, o.Err)
	assert.Equal(t, OpCleared, o.Op)
	assert.Equal(t, 2, o.Count)
	assert.Equal(t, -2, o.Signed())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, " bar ", string(b))
}

func TestProcessFile_TextReplace(t *testing.T) {
	p := writeTemp(t, "a.txt", []byte("path/a path/b"))
	o := ProcessFile(p, targets.Build([]string{"path/a"}, false), Options{Replacement: "PATHA"})

	require.NoError(t, o.Err)
	assert.Equal(t, OpReplaced, o.Op)
	assert.Equal(t, 1, o.Count)
	assert.Equal(t, 1, o.Signed())

	b, _ := os.ReadFile(p)
	assert.Equal(t, "PATHA path/b", string(b))
}

func TestProcessFile_BinaryAlwaysCleared(t *testing.T) {
	// NUL bytes force the binary classification; even with a replacement
	// string configured, binary content is cleared, never substituted.
	body := []byte("\x00\x00/old/prefix/lib.so\x00\x00")
	p := writeTemp(t, "a.bin", body)
	o := ProcessFile(p, targets.Build([]string{"/old/prefix"}, false), Options{Replacement: "ignored"})

	require.NoError(t, o.Err)
	assert.Equal(t, OpCleared, o.Op)
	assert.Equal(t, 1, o.Count)

	b, _ := os.ReadFile(p)
	assert.Len(t, b, len(body))
	assert.Equal(t, []byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00/lib.so\x00\x00"), b)
}

func TestProcessFile_UntouchedFileNotRewritten(t *testing.T) {
	p := writeTemp(t, "a.txt", []byte("nothing to see"))
	before, err := os.Stat(p)
	require.NoError(t, err)

	o := ProcessFile(p, targets.Build([]string{"absent"}, false), Options{})
	require.NoError(t, o.Err)
	assert.Equal(t, OpNone, o.Op)

	after, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestProcessFile_OpenError(t *testing.T) {
	o := ProcessFile(filepath.Join(t.TempDir(), "missing"), targets.Build([]string{"x"}, false), Options{})
	var oe *OpenError
	require.ErrorAs(t, o.Err, &oe)
	// An unreadable file is an error marker, never the numeric zero.
	assert.Equal(t, OpNone, o.Op)
	assert.Zero(t, o.Count)
	assert.False(t, o.Changed())
}

func TestProcessFile_LoopGuardLeavesFileUnchanged(t *testing.T) {
	body := []byte("target foo here")
	p := writeTemp(t, "a.txt", body)
	o := ProcessFile(p, targets.Build([]string{"foo"}, false), Options{Replacement: "afoob"})

	var lge *LoopGuardError
	require.ErrorAs(t, o.Err, &lge)

	b, _ := os.ReadFile(p)
	assert.Equal(t, body, b, "rejected file must stay byte-for-byte unchanged")
}

func TestProcessFile_ModeFilters(t *testing.T) {
	text := writeTemp(t, "a.txt", []byte("foo"))
	bin := writeTemp(t, "a.bin", []byte("foo\x00bar"))
	set := targets.Build([]string{"foo"}, false)

	o := ProcessFile(text, set, Options{BinaryOnly: true})
	require.NoError(t, o.Err)
	assert.Equal(t, OpNone, o.Op)

	o = ProcessFile(bin, set, Options{TextOnly: true})
	require.NoError(t, o.Err)
	assert.Equal(t, OpNone, o.Op)

	// Skipped files keep their content.
	b, _ := os.ReadFile(text)
	assert.Equal(t, "foo", string(b))
	b, _ = os.ReadFile(bin)
	assert.Equal(t, []byte("foo\x00bar"), b)
}

func TestProcessFile_ClearIdempotent(t *testing.T) {
	p := writeTemp(t, "a.txt", []byte("foo bar foo"))
	set := targets.Build([]string{"foo"}, false)

	first := ProcessFile(p, set, Options{})
	require.NoError(t, first.Err)
	assert.Equal(t, 2, first.Count)

	second := ProcessFile(p, set, Options{})
	require.NoError(t, second.Err)
	assert.Equal(t, OpNone, second.Op)
	assert.Zero(t, second.Count)
}
