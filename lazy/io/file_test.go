package io_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-lazy/lazy"
	lazyio "github.com/lguimbarda/min-lazy/lazy/io"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "unix endings", input: "a\nb\nc\n", want: []string{"a", "b", "c"}},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "windows endings", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := lazyio.Lines(strings.NewReader(tt.input))
			assert.Equal(t, tt.want, c.Collect())
			assert.NoError(t, c.Err())
		})
	}
}

func TestLinesUntilBlank(t *testing.T) {
	// Headers end at the first blank line; the body is never exposed.
	msg := "From: a\nTo: b\n\nbody\n"
	headers := lazy.UntilEq[string](lazyio.Lines(strings.NewReader(msg)), "")
	assert.Equal(t, []string{"From: a", "To: b"}, headers.Collect())
}

func TestWords(t *testing.T) {
	c := lazyio.Words(strings.NewReader("  the quick\tbrown\n fox "))
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, c.Collect())
}

func TestLinesReaderError(t *testing.T) {
	boom := errors.New("disk on fire")
	c := lazyio.Lines(&failingReader{data: "a\nb\n", err: boom})
	assert.Equal(t, []string{"a", "b"}, c.Collect())
	assert.ErrorIs(t, c.Err(), boom)
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o600))

	c, err := lazyio.ReadLines(path)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, []string{"one", "two"}, c.Take(2).Collect())
	require.NoError(t, c.Close())
	assert.False(t, c.HasMore())
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := lazyio.ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// failingReader returns data and then err instead of io.EOF.
type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}
