package driving

import (
	"context"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// BrowseService supplies the section tree and its live filtering.
type BrowseService interface {
	// Sections returns the ordered section listing. Implementations may
	// cache the listing between calls and invalidate it when the manual
	// directories change.
	Sections(ctx context.Context) ([]domain.Section, error)

	// Filter returns the sections whose entries match the query by
	// case-insensitive substring on the entry text ("name.section").
	// Sections left without matching pages are dropped. An empty query
	// returns the input unchanged.
	Filter(sections []domain.Section, query string) []domain.Section

	// Changes returns a channel that receives a value whenever the
	// section listing was invalidated, for consumers that want to
	// refresh a displayed tree. It returns nil when the service has no
	// watcher attached.
	Changes() <-chan struct{}
}

// PageService loads the rendered text of a manual page.
type PageService interface {
	// Load returns the plain-text rendering of the page, consulting the
	// cache first when one is configured.
	Load(ctx context.Context, page domain.Page) (string, error)
}
