package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

// Ensure PageService implements the driving port.
var _ driving.PageService = (*PageService)(nil)

// PageService renders manual pages, consulting an optional cache first.
type PageService struct {
	renderer driven.PageRenderer
	cache    driven.PageCache // may be nil
}

// NewPageService creates a page service. The cache may be nil, in which
// case every load runs the formatting pipeline.
func NewPageService(renderer driven.PageRenderer, cache driven.PageCache) *PageService {
	return &PageService{
		renderer: renderer,
		cache:    cache,
	}
}

// Load returns the rendered plain text for the page.
//
// Cache failures are logged and treated as misses so a broken cache
// never blocks page viewing.
func (s *PageService) Load(ctx context.Context, page domain.Page) (string, error) {
	if !page.Valid() {
		return "", fmt.Errorf("%w: page %q section %q", domain.ErrInvalidInput, page.Name, page.Section)
	}

	if s.cache != nil {
		content, ok, err := s.cache.Get(ctx, page)
		if err != nil {
			logger.Warn("page cache get %s: %v", page, err)
		} else if ok {
			logger.Debug("cache hit for %s", page)
			return content, nil
		}
	}

	content, err := s.renderer.Render(ctx, page)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", page, err)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, page, content); err != nil {
			logger.Warn("page cache put %s: %v", page, err)
		}
	}
	return content, nil
}
