package manrender

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

// writeScript drops an executable shell script into dir and returns its
// path. The tests drive the renderer with fake man/col binaries so they
// do not depend on the host manual system.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRenderer_Render(t *testing.T) {
	dir := t.TempDir()
	man := writeScript(t, dir, "man", `printf 'LS(1)  User Commands  LS(1)\n\nNAME\n    ls - list directory contents\n'`)
	col := writeScript(t, dir, "col", `cat`)

	r := &Renderer{ManBinary: man, ColBinary: col}
	out, err := r.Render(context.Background(), domain.Page{Name: "ls", Section: "1"})
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "ls - list directory contents")
}

func TestRenderer_PassesSectionAndName(t *testing.T) {
	dir := t.TempDir()
	man := writeScript(t, dir, "man", `printf '%s %s\n' "$1" "$2"`)
	col := writeScript(t, dir, "col", `cat`)

	r := &Renderer{ManBinary: man, ColBinary: col}
	out, err := r.Render(context.Background(), domain.Page{Name: "printf", Section: "3"})
	require.NoError(t, err)
	assert.Equal(t, "3 printf\n", out)
}

func TestRenderer_PageNotFound(t *testing.T) {
	dir := t.TempDir()
	man := writeScript(t, dir, "man", `echo "No manual entry for $2 in section $1" >&2; exit 16`)
	col := writeScript(t, dir, "col", `cat`)

	r := &Renderer{ManBinary: man, ColBinary: col}
	_, err := r.Render(context.Background(), domain.Page{Name: "nosuchpage", Section: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
	assert.Contains(t, err.Error(), "nosuchpage.1")
}

func TestRenderer_PipelineFailure(t *testing.T) {
	dir := t.TempDir()
	man := writeScript(t, dir, "man", `echo "groff: fatal error" >&2; exit 3`)
	col := writeScript(t, dir, "col", `cat`)

	r := &Renderer{ManBinary: man, ColBinary: col}
	_, err := r.Render(context.Background(), domain.Page{Name: "ls", Section: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	assert.Contains(t, err.Error(), "groff: fatal error")
}

func TestRenderer_Timeout(t *testing.T) {
	dir := t.TempDir()
	man := writeScript(t, dir, "man", `sleep 30`)
	col := writeScript(t, dir, "col", `cat`)

	r := &Renderer{ManBinary: man, ColBinary: col, Timeout: 100 * time.Millisecond}
	start := time.Now()
	_, err := r.Render(context.Background(), domain.Page{Name: "ls", Section: "1"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRenderer_MissingBinary(t *testing.T) {
	r := &Renderer{ManBinary: "/nonexistent/man", ColBinary: "/nonexistent/col"}
	_, err := r.Render(context.Background(), domain.Page{Name: "ls", Section: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}
