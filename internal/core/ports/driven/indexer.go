package driven

import (
	"context"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// SectionIndexer enumerates the manual sections and page names known to
// the host man system.
type SectionIndexer interface {
	// Sections returns the ordered list of manual sections, numeric
	// sections first, each with its pages sorted by name and
	// de-duplicated across manual paths.
	Sections(ctx context.Context) ([]domain.Section, error)
}

// IndexWatcher signals that the manual directories changed on disk and
// a cached section listing should be considered stale.
type IndexWatcher interface {
	// Events returns a channel that receives a value whenever the
	// watched manual directories change. Events are coalesced.
	Events() <-chan struct{}

	// Close stops watching and closes the events channel.
	Close() error
}
