// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowser is the section tree with the filter field.
	ViewBrowser ViewType = iota
	// ViewPager is the rendered page with the highlight search bar.
	ViewPager
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPager:
		return "pager"
	default:
		return "browser"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SectionsLoaded carries the section tree from the browse service.
type SectionsLoaded struct {
	Sections []domain.Section
	Err      error
}

// PageSelected is sent when a page entry is chosen in the tree.
type PageSelected struct {
	Page domain.Page
}

// PageLoaded carries a rendered page back to the model. On failure
// Content is empty and Err describes what went wrong; the pager shows
// the error in the display area and the search session stays idle.
type PageLoaded struct {
	Page    domain.Page
	Content string
	Err     error
}

// IndexChanged signals that the manual directories changed and the tree
// should be repopulated.
type IndexChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
