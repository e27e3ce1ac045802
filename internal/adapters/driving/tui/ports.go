// Package tui provides the interactive terminal interface for manex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/manex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Browse supplies the section tree and filtering.
	Browse driving.BrowseService

	// Page loads rendered manual pages.
	Page driving.PageService

	// CaseSensitive selects the highlight search matching policy.
	CaseSensitive bool
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(browse driving.BrowseService, page driving.PageService) *Ports {
	return &Ports{
		Browse: browse,
		Page:   page,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Browse == nil {
		return ErrMissingBrowseService
	}
	if p.Page == nil {
		return ErrMissingPageService
	}
	return nil
}
