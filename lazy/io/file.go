// Package io provides source cursors over text read from an io.Reader or a
// file. Lines are split with bufio.Scanner and handed out one at a time; the
// input is never read ahead of the pending element.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Lines creates a cursor over the lines of r, without their line endings.
// If r is an io.Closer it is closed when the cursor runs out or is closed.
func Lines(r io.Reader) *core.ReadCursor[string] {
	return Scan(r, bufio.ScanLines)
}

// Words creates a cursor over the space-separated words of r.
func Words(r io.Reader) *core.ReadCursor[string] {
	return Scan(r, bufio.ScanWords)
}

// Scan creates a cursor over the tokens of r produced by split.
func Scan(r io.Reader, split bufio.SplitFunc) *core.ReadCursor[string] {
	scanner := bufio.NewScanner(r)
	scanner.Split(split)

	read := func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return core.FromRead(read, closerOf(r))
}

// ReadLines creates a cursor over the lines of the file at path.
// The file is closed when the cursor runs out or is closed; if it cannot be
// opened the error is returned right away.
func ReadLines(path string) (*core.ReadCursor[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return Lines(f), nil
}

func closerOf(r io.Reader) func() error {
	if c, ok := r.(io.Closer); ok {
		return c.Close
	}
	return nil
}
