// Package sqlite provides a SQLite-backed cache of rendered manual
// pages, keyed by page name and section.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
)

// schema holds the single cache table. Rendered text for a page is
// replaced wholesale on every store.
const schema = `
CREATE TABLE IF NOT EXISTS page_cache (
    name        TEXT NOT NULL,
    section     TEXT NOT NULL,
    content     TEXT NOT NULL,
    rendered_at TIMESTAMP NOT NULL,
    PRIMARY KEY (name, section)
);
`

// Ensure PageCache implements the driven port.
var _ driven.PageCache = (*PageCache)(nil)

// PageCache stores rendered pages in a SQLite database.
type PageCache struct {
	db   *sql.DB
	path string
}

// NewPageCache opens (creating if needed) the cache database at the
// given path. If path is empty, defaults to ~/.manex/cache.db.
func NewPageCache(path string) (*PageCache, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".manex", "cache.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	// WAL mode so a reader never blocks the writer
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &PageCache{db: db, path: path}, nil
}

// Get returns the cached rendering of page, if present.
func (c *PageCache) Get(ctx context.Context, page domain.Page) (string, bool, error) {
	var content string
	err := c.db.QueryRowContext(ctx,
		`SELECT content FROM page_cache WHERE name = ? AND section = ?`,
		page.Name, page.Section,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading page cache: %w", err)
	}
	return content, true, nil
}

// Put stores the rendering of page, replacing any previous entry.
func (c *PageCache) Put(ctx context.Context, page domain.Page, content string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO page_cache (name, section, content, rendered_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (name, section) DO UPDATE SET
		     content = excluded.content,
		     rendered_at = excluded.rendered_at`,
		page.Name, page.Section, content, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing page cache: %w", err)
	}
	return nil
}

// Purge removes every cached page.
func (c *PageCache) Purge(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM page_cache`); err != nil {
		return fmt.Errorf("purging page cache: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *PageCache) Path() string {
	return c.path
}

// Close closes the database connection.
func (c *PageCache) Close() error {
	return c.db.Close()
}
