// Package manpath implements the SectionIndexer driven port by listing
// the manual directories reported by manpath(1).
package manpath

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

// defaultManDir is the fallback when neither manpath(1) nor $MANPATH
// yields anything usable.
const defaultManDir = "/usr/share/man"

// manpathTimeout bounds the manpath(1) invocation.
const manpathTimeout = 10 * time.Second

// Ensure Indexer implements the driven port.
var _ driven.SectionIndexer = (*Indexer)(nil)

// Indexer enumerates manual sections by listing man<section>
// subdirectories of every manual path.
type Indexer struct {
	// Binary is the manpath executable, "manpath" by default.
	Binary string

	// Paths overrides path discovery entirely when non-empty.
	// Used for testing and for explicit configuration.
	Paths []string
}

// NewIndexer creates an indexer that discovers paths via manpath(1).
func NewIndexer() *Indexer {
	return &Indexer{Binary: "manpath"}
}

// Sections lists every manual section and its pages.
//
// A page entry is derived from the filename up to the first dot
// ("ls.1.gz" -> "ls"); files without a dot are skipped. Duplicate
// (name, section) pairs across manual paths are dropped, mirroring how
// man(1) itself resolves the first hit on its path.
func (ix *Indexer) Sections(ctx context.Context) ([]domain.Section, error) {
	paths := ix.Paths
	if len(paths) == 0 {
		paths = ix.discoverPaths(ctx)
	}
	if len(paths) == 0 {
		return nil, domain.ErrNoManPath
	}

	type key struct{ name, section string }
	seen := make(map[key]struct{})
	bySection := make(map[string][]domain.Page)

	for _, path := range paths {
		entries, err := os.ReadDir(path)
		if err != nil {
			logger.Debug("skipping manual path %s: %v", path, err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "man") {
				continue
			}
			section := strings.TrimPrefix(entry.Name(), "man")
			if section == "" {
				continue
			}
			files, err := os.ReadDir(filepath.Join(path, entry.Name()))
			if err != nil {
				continue
			}
			for _, file := range files {
				name, _, found := strings.Cut(file.Name(), ".")
				if !found || name == "" {
					continue
				}
				k := key{name: name, section: section}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				bySection[section] = append(bySection[section], domain.Page{Name: name, Section: section})
			}
		}
	}

	if len(bySection) == 0 {
		return nil, domain.ErrNoManPath
	}

	sections := make([]domain.Section, 0, len(bySection))
	for id, pages := range bySection {
		sort.Slice(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })
		sections = append(sections, domain.Section{ID: id, Pages: pages})
	}
	sort.Slice(sections, func(i, j int) bool {
		return sectionLess(sections[i].ID, sections[j].ID)
	})
	return sections, nil
}

// ManPaths returns the manual paths the indexer would scan. Exposed so
// a watcher can be pointed at the same directories.
func (ix *Indexer) ManPaths(ctx context.Context) []string {
	if len(ix.Paths) > 0 {
		return ix.Paths
	}
	return ix.discoverPaths(ctx)
}

// discoverPaths asks manpath(1) for the search path and falls back to
// $MANPATH, then to the conventional system directory.
func (ix *Indexer) discoverPaths(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, manpathTimeout)
	defer cancel()

	binary := ix.Binary
	if binary == "" {
		binary = "manpath"
	}

	cmd := exec.CommandContext(ctx, binary)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		logger.Warn("manpath invocation failed: %v", err)
	}

	raw := strings.TrimSpace(stdout.String())
	if raw == "" {
		raw = os.Getenv("MANPATH")
	}

	var paths []string
	for _, p := range strings.Split(raw, ":") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		paths = []string{defaultManDir}
	}
	return paths
}

// sectionLess orders sections by their leading integer, with purely
// non-numeric sections ("n", "l") after all numbered ones. Ties break
// lexically, so "3" sorts before "3pm".
func sectionLess(a, b string) bool {
	na, aok := leadingInt(a)
	nb, bok := leadingInt(b)
	switch {
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	case aok && bok && na != nb:
		return na < nb
	default:
		return a < b
	}
}

// leadingInt parses the run of leading digits of s.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
