// Package tree provides the manual section tree component for the TUI.
package tree

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// rowKind discriminates tree rows.
type rowKind int

const (
	rowSection rowKind = iota
	rowPage
)

// row is a single visible line of the flattened tree.
type row struct {
	kind    rowKind
	section string
	page    domain.Page
}

// SectionTree displays manual sections as an expandable tree with a
// cursor. While a filter is active every surviving section is expanded
// so the matches are visible.
type SectionTree struct {
	styles   *styles.Styles
	sections []domain.Section
	expanded map[string]bool
	filtered bool

	rows   []row
	cursor int
	width  int
	height int
}

// NewSectionTree creates an empty tree component.
func NewSectionTree(s *styles.Styles) *SectionTree {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &SectionTree{
		styles:   s,
		expanded: make(map[string]bool),
		width:    80,
		height:   20,
	}
}

// Init initialises the tree.
func (t *SectionTree) Init() tea.Cmd {
	return nil
}

// SetSections replaces the displayed sections. filtered tells the tree
// the listing is already narrowed by a query, which forces every
// section open. The cursor is clamped to the new row count.
func (t *SectionTree) SetSections(sections []domain.Section, filtered bool) {
	t.sections = sections
	t.filtered = filtered
	t.rebuildRows()
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// rebuildRows flattens sections into visible rows.
func (t *SectionTree) rebuildRows() {
	t.rows = t.rows[:0]
	for _, sec := range t.sections {
		t.rows = append(t.rows, row{kind: rowSection, section: sec.ID})
		if t.filtered || t.expanded[sec.ID] {
			for _, p := range sec.Pages {
				t.rows = append(t.rows, row{kind: rowPage, section: sec.ID, page: p})
			}
		}
	}
}

// Update handles navigation key messages.
func (t *SectionTree) Update(msg tea.Msg) (*SectionTree, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up":
			t.MoveUp()
		case "down":
			t.MoveDown()
		}
	}
	return t, nil
}

// MoveUp moves the cursor up one row.
func (t *SectionTree) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// MoveDown moves the cursor down one row.
func (t *SectionTree) MoveDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
	}
}

// Toggle expands or collapses the section under the cursor. It reports
// whether the cursor was on a section row.
func (t *SectionTree) Toggle() bool {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return false
	}
	r := t.rows[t.cursor]
	if r.kind != rowSection {
		return false
	}
	t.expanded[r.section] = !t.expanded[r.section]
	t.rebuildRows()
	return true
}

// SelectedPage returns the page under the cursor, or nil when the
// cursor is on a section row or the tree is empty.
func (t *SectionTree) SelectedPage() *domain.Page {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	r := t.rows[t.cursor]
	if r.kind != rowPage {
		return nil
	}
	page := r.page
	return &page
}

// View renders the visible window of the tree.
func (t *SectionTree) View() string {
	if len(t.rows) == 0 {
		return t.styles.Muted.Render("No manual pages found")
	}

	lines := make([]string, 0, t.height)
	header := t.styles.Subtitle.Render(fmt.Sprintf("Manual Sections (%d pages)", domain.PageCount(t.sections)))
	lines = append(lines, header, "")

	visible := t.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if t.cursor >= visible {
		start = t.cursor - visible + 1
	}
	end := start + visible
	if end > len(t.rows) {
		end = len(t.rows)
	}

	for i := start; i < end; i++ {
		lines = append(lines, t.renderRow(i))
	}

	return strings.Join(lines, "\n")
}

// renderRow formats one tree row with cursor and expansion markers.
func (t *SectionTree) renderRow(i int) string {
	r := t.rows[i]

	indicator := "  "
	if i == t.cursor {
		indicator = "> "
	}

	var label string
	switch r.kind {
	case rowSection:
		marker := "▸"
		if t.filtered || t.expanded[r.section] {
			marker = "▾"
		}
		label = marker + " Section " + r.section
		if i == t.cursor {
			return t.styles.Selected.Render(indicator + label)
		}
		return t.styles.Subtitle.Render(indicator + label)
	default:
		label = "    " + r.page.String()
		if i == t.cursor {
			return t.styles.Selected.Render(indicator + label)
		}
		return t.styles.Normal.Render(indicator + label)
	}
}

// Cursor returns the cursor row index.
func (t *SectionTree) Cursor() int {
	return t.cursor
}

// RowCount returns the number of visible rows.
func (t *SectionTree) RowCount() int {
	return len(t.rows)
}

// SetDimensions sets the component dimensions.
func (t *SectionTree) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}
