package io

import (
	"io"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Walk creates a cursor over every file and directory path under root,
// root included, in lexical order. The tree is walked one entry per Advance.
// The first error met while walking ends the cursor and is reported by Err.
// Close stops the walk early.
func Walk(root string) *core.ReadCursor[string] {
	return walk(root, nil)
}

// WalkFiles is like Walk but only produces paths that are not directories.
func WalkFiles(root string) *core.ReadCursor[string] {
	return walk(root, func(d fs.DirEntry) bool { return !d.IsDir() })
}

// WalkDirs is like Walk but only produces directory paths.
func WalkDirs(root string) *core.ReadCursor[string] {
	return walk(root, func(d fs.DirEntry) bool { return d.IsDir() })
}

// Glob creates a cursor over the paths matching pattern, as filepath.Glob
// reports them. A malformed pattern is returned as an error.
func Glob(pattern string) (*core.RangeCursor[string, core.SlicePosition[string]], error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	return core.FromSlice(matches), nil
}

func walk(root string, keep func(fs.DirEntry) bool) *core.ReadCursor[string] {
	entries := func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if keep != nil && !keep(d) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}

	next, stop := iter.Pull2(entries)
	read := func() (string, error) {
		path, err, ok := next()
		if !ok {
			return "", io.EOF
		}
		return path, err
	}
	return core.FromRead(read, func() error {
		stop()
		return nil
	})
}
