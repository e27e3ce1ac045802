// Command manex is an explorer for the system manual: an interactive
// section tree, a page viewer with in-page highlight search, and a few
// non-interactive subcommands for scripting.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/manex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/manex-cli/internal/adapters/driven/manpath"
	"github.com/custodia-labs/manex-cli/internal/adapters/driven/manrender"
	"github.com/custodia-labs/manex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manex-cli/internal/core/services"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	indexer := manpath.NewIndexer()
	browse := services.NewBrowseService(indexer)

	if boolOr(cfg, file.KeyWatch, true) {
		paths := indexer.ManPaths(context.Background())
		watcher, err := manpath.NewWatcher(paths)
		if err != nil {
			logger.Warn("manual directory watcher unavailable: %v", err)
		} else {
			browse = browse.WithWatcher(watcher)
		}
	}
	defer func() {
		if err := browse.Close(); err != nil {
			logger.Warn("closing browse service: %v", err)
		}
	}()

	renderer := manrender.NewRenderer()
	if bin := cfg.GetString(file.KeyManBinary); bin != "" {
		renderer.ManBinary = bin
	}
	if bin := cfg.GetString(file.KeyColBinary); bin != "" {
		renderer.ColBinary = bin
	}

	var cache driven.PageCache
	if boolOr(cfg, file.KeyCacheEnabled, true) {
		cachePath := cfg.GetString(file.KeyCachePath)
		if cachePath == "" {
			cachePath = filepath.Join(filepath.Dir(cfg.Path()), "cache.db")
		}
		c, err := sqlite.NewPageCache(cachePath)
		if err != nil {
			logger.Warn("page cache unavailable: %v", err)
		} else {
			cache = c
			defer func() {
				if err := c.Close(); err != nil {
					logger.Warn("closing page cache: %v", err)
				}
			}()
		}
	}

	page := services.NewPageService(renderer, cache)

	cli.SetServices(browse, page)
	cli.SetCaseSensitive(cfg.GetBool(file.KeyCaseSensitive))

	return cli.Execute()
}

// boolOr reads a boolean config value, falling back to def when the key
// is unset or not a boolean.
func boolOr(cfg *file.ConfigStore, key string, def bool) bool {
	v, ok := cfg.Get(key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
