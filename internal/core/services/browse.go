package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

// Ensure BrowseService implements the driving port.
var _ driving.BrowseService = (*BrowseService)(nil)

// BrowseService serves the section tree from a SectionIndexer, caching
// the listing until the manual directories change.
type BrowseService struct {
	indexer driven.SectionIndexer

	mu       sync.Mutex
	sections []domain.Section
	stale    bool

	watcher driven.IndexWatcher
	notify  chan struct{}
	done    chan struct{}
}

// NewBrowseService creates a browse service over the given indexer.
func NewBrowseService(indexer driven.SectionIndexer) *BrowseService {
	return &BrowseService{
		indexer: indexer,
		stale:   true,
	}
}

// WithWatcher attaches an index watcher: whenever it fires, the cached
// listing is invalidated so the next Sections call re-enumerates.
func (s *BrowseService) WithWatcher(w driven.IndexWatcher) *BrowseService {
	if w == nil {
		return s
	}
	s.watcher = w
	s.notify = make(chan struct{}, 1)
	s.done = make(chan struct{})
	go func() {
		for {
			select {
			case _, ok := <-w.Events():
				if !ok {
					return
				}
				logger.Debug("manual directories changed, invalidating section cache")
				s.Invalidate()
				select {
				case s.notify <- struct{}{}:
				default:
				}
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Changes returns the invalidation channel, nil without a watcher.
func (s *BrowseService) Changes() <-chan struct{} {
	return s.notify
}

// Sections returns the section listing, re-enumerating only when the
// cache is stale.
func (s *BrowseService) Sections(ctx context.Context) ([]domain.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stale && s.sections != nil {
		return s.sections, nil
	}

	sections, err := s.indexer.Sections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing manual sections: %w", err)
	}
	s.sections = sections
	s.stale = false
	logger.Debug("indexed %d sections, %d pages", len(sections), domain.PageCount(sections))
	return sections, nil
}

// Invalidate marks the cached listing stale.
func (s *BrowseService) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// Filter returns the sections whose entries contain query as a
// case-insensitive substring of the entry text. Sections with no
// surviving pages are dropped. An empty or whitespace query returns the
// input unchanged.
func (s *BrowseService) Filter(sections []domain.Section, query string) []domain.Section {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sections
	}

	filtered := make([]domain.Section, 0, len(sections))
	for _, sec := range sections {
		var pages []domain.Page
		for _, p := range sec.Pages {
			if strings.Contains(strings.ToLower(p.String()), query) {
				pages = append(pages, p)
			}
		}
		if len(pages) > 0 {
			filtered = append(filtered, domain.Section{ID: sec.ID, Pages: pages})
		}
	}
	return filtered
}

// Close stops the watcher goroutine, if any.
func (s *BrowseService) Close() error {
	if s.done != nil {
		close(s.done)
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
