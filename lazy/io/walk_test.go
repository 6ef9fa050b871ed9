package io_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-lazy/lazy"
	lazyio "github.com/lguimbarda/min-lazy/lazy/io"
)

// tree creates root/a/b.txt, root/a/c.log and root/d.txt.
func tree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "a"), 0o755))
	for _, name := range []string{"a/b.txt", "a/c.log", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(name), 0o644))
	}
	return root
}

func TestWalk(t *testing.T) {
	root := tree(t)
	join := func(p string) string { return filepath.Join(root, p) }

	c := lazyio.Walk(root)
	assert.Equal(t, []string{root, join("a"), join("a/b.txt"), join("a/c.log"), join("d.txt")}, c.Collect())
	assert.NoError(t, c.Err())
}

func TestWalkFilesAndDirs(t *testing.T) {
	root := tree(t)
	join := func(p string) string { return filepath.Join(root, p) }

	assert.Equal(t, []string{join("a/b.txt"), join("a/c.log"), join("d.txt")}, lazyio.WalkFiles(root).Collect())
	assert.Equal(t, []string{root, join("a")}, lazyio.WalkDirs(root).Collect())
}

func TestWalkStopsEarly(t *testing.T) {
	root := tree(t)

	c := lazyio.WalkFiles(root)
	first := lazy.Take[string](c, 1).Collect()
	require.NoError(t, c.Close())

	assert.Equal(t, []string{filepath.Join(root, "a/b.txt")}, first)
	assert.False(t, c.HasMore())
}

func TestWalkMissingRoot(t *testing.T) {
	c := lazyio.Walk(filepath.Join(t.TempDir(), "missing"))

	assert.False(t, c.HasMore())
	assert.ErrorIs(t, c.Err(), os.ErrNotExist)
}

func TestGlob(t *testing.T) {
	root := tree(t)

	c, err := lazyio.Glob(filepath.Join(root, "*", "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a/b.txt")}, c.Collect())

	_, err = lazyio.Glob("[")
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}
