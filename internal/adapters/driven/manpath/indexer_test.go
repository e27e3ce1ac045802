package manpath

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// writeManTree builds a fake manual directory under dir.
func writeManTree(t *testing.T, dir string, section string, files ...string) {
	t.Helper()
	secDir := filepath.Join(dir, "man"+section)
	require.NoError(t, os.MkdirAll(secDir, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(secDir, f), []byte(".TH TEST 1\n"), 0o644))
	}
}

func TestIndexer_Sections(t *testing.T) {
	dir := t.TempDir()
	writeManTree(t, dir, "1", "ls.1.gz", "cp.1.gz", "noext")
	writeManTree(t, dir, "8", "mount.8.gz")
	writeManTree(t, dir, "3pm", "Carp.3pm.gz")
	writeManTree(t, dir, "n", "tclsh.n.gz")

	ix := &Indexer{Paths: []string{dir}}
	sections, err := ix.Sections(context.Background())
	require.NoError(t, err)

	// Numeric sections first in order, non-numeric last.
	require.Len(t, sections, 4)
	assert.Equal(t, "1", sections[0].ID)
	assert.Equal(t, "3pm", sections[1].ID)
	assert.Equal(t, "8", sections[2].ID)
	assert.Equal(t, "n", sections[3].ID)

	// Pages sorted by name; the extension-less file is skipped.
	require.Len(t, sections[0].Pages, 2)
	assert.Equal(t, "cp", sections[0].Pages[0].Name)
	assert.Equal(t, "ls", sections[0].Pages[1].Name)
}

func TestIndexer_DeduplicatesAcrossPaths(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeManTree(t, first, "1", "ls.1.gz")
	writeManTree(t, second, "1", "ls.1", "tar.1.gz")

	ix := &Indexer{Paths: []string{first, second}}
	sections, err := ix.Sections(context.Background())
	require.NoError(t, err)

	require.Len(t, sections, 1)
	require.Len(t, sections[0].Pages, 2)
	assert.Equal(t, "ls", sections[0].Pages[0].Name)
	assert.Equal(t, "tar", sections[0].Pages[1].Name)
}

func TestIndexer_SkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	writeManTree(t, dir, "1", "ls.1.gz")

	ix := &Indexer{Paths: []string{"/does/not/exist", dir}}
	sections, err := ix.Sections(context.Background())
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestIndexer_IgnoresNonManEntries(t *testing.T) {
	dir := t.TempDir()
	writeManTree(t, dir, "1", "ls.1.gz")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cat1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "whatis"), nil, 0o644))

	ix := &Indexer{Paths: []string{dir}}
	sections, err := ix.Sections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "1", sections[0].ID)
}

func TestSectionLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1", "2", true},
		{"2", "10", true},
		{"3", "3pm", true},
		{"8", "n", true},
		{"n", "8", false},
		{"l", "n", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sectionLess(tt.a, tt.b), "%q < %q", tt.a, tt.b)
	}
}

func TestWatcher_SignalsOnChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "man1"), []byte("x"), 0o644))

	select {
	case _, ok := <-w.Events():
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change signal")
	}
}

func TestIndexer_NoUsablePaths(t *testing.T) {
	// Paths that yield no pages at all report ErrNoManPath.
	ix := &Indexer{Paths: []string{"/does/not/exist", t.TempDir()}}

	_, err := ix.Sections(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoManPath)
}
