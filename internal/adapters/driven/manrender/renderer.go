// Package manrender implements the PageRenderer driven port by piping
// man(1) output through col(1) to obtain overstrike-free plain text.
package manrender

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

// defaultTimeout bounds the whole formatting pipeline. A hung pipeline
// blocks the interface, so renders are cut off rather than left to spin.
const defaultTimeout = 30 * time.Second

// Ensure Renderer implements the driven port.
var _ driven.PageRenderer = (*Renderer)(nil)

// Renderer shells out to the system manual formatter.
type Renderer struct {
	// ManBinary is the man executable, "man" by default.
	ManBinary string

	// ColBinary is the col executable, "col" by default.
	ColBinary string

	// Timeout bounds a single render; defaultTimeout when zero.
	Timeout time.Duration
}

// NewRenderer creates a renderer using the system man and col binaries.
func NewRenderer() *Renderer {
	return &Renderer{ManBinary: "man", ColBinary: "col"}
}

// Render runs `man <section> <name> | col -bx` and returns the text.
//
// A missing page is reported as domain.ErrPageNotFound; any other
// pipeline failure as domain.ErrRenderFailed with the pipeline's stderr
// attached.
func (r *Renderer) Render(ctx context.Context, page domain.Page) (string, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	manBin := r.ManBinary
	if manBin == "" {
		manBin = "man"
	}
	colBin := r.ColBinary
	if colBin == "" {
		colBin = "col"
	}

	man := exec.CommandContext(ctx, manBin, page.Section, page.Name)
	col := exec.CommandContext(ctx, colBin, "-b", "-x")
	man.WaitDelay = 5 * time.Second
	col.WaitDelay = 5 * time.Second

	var manErr, colErr, out bytes.Buffer
	man.Stderr = &manErr
	col.Stderr = &colErr
	col.Stdout = &out

	pipe, err := man.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	col.Stdin = pipe

	logger.Debug("rendering %s via %s | %s -bx", page, manBin, colBin)

	if err := man.Start(); err != nil {
		return "", fmt.Errorf("%w: starting %s: %v", domain.ErrRenderFailed, manBin, err)
	}
	if err := col.Start(); err != nil {
		_ = man.Wait()
		return "", fmt.Errorf("%w: starting %s: %v", domain.ErrRenderFailed, colBin, err)
	}

	manWait := man.Wait()
	colWait := col.Wait()

	if manWait != nil {
		stderr := strings.TrimSpace(manErr.String())
		if isNotFound(stderr) {
			return "", fmt.Errorf("%w: %s", domain.ErrPageNotFound, page)
		}
		return "", fmt.Errorf("%w: %s: %v: %s", domain.ErrRenderFailed, manBin, manWait, stderr)
	}
	if colWait != nil {
		return "", fmt.Errorf("%w: %s: %v: %s", domain.ErrRenderFailed, colBin, colWait, strings.TrimSpace(colErr.String()))
	}

	return out.String(), nil
}

// isNotFound recognises man(1)'s missing-page diagnostics.
func isNotFound(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "no manual entry") ||
		strings.Contains(lower, "nothing appropriate")
}
