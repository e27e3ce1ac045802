package driven

import (
	"context"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// PageRenderer invokes the manual-formatting pipeline for a page and
// returns the rendered plain text.
type PageRenderer interface {
	// Render formats the page to plain text. A missing page is reported
	// as domain.ErrPageNotFound; a formatting pipeline failure as
	// domain.ErrRenderFailed.
	Render(ctx context.Context, page domain.Page) (string, error)
}

// PageCache stores rendered page text keyed by page identity.
// Implementations are best-effort: callers treat failures as misses.
type PageCache interface {
	// Get returns the cached text for the page and whether it was found.
	Get(ctx context.Context, page domain.Page) (string, bool, error)

	// Put stores the rendered text for the page, replacing any previous
	// entry.
	Put(ctx context.Context, page domain.Page, content string) error

	// Close releases the cache's resources.
	Close() error
}
