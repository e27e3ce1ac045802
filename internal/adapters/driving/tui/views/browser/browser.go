// Package browser implements the section tree view with live filtering.
package browser

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/components/tree"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driving"
)

// View is the browser view. The filter field keeps keyboard focus the
// whole time; cursor and selection keys are routed to the tree so the
// user never has to switch focus to navigate.
type View struct {
	browse driving.BrowseService

	styles *styles.Styles
	keys   *keymap.KeyMap

	filter *input.SearchInput
	tree   *tree.SectionTree
	bar    *status.Bar

	// allSections is the unfiltered listing; filtering always starts
	// from this cache rather than the currently displayed subset.
	allSections []domain.Section

	width   int
	height  int
	loading bool
}

// NewView creates a new browser view.
func NewView(browse driving.BrowseService, s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	keys := keymap.DefaultKeyMap()

	filter := input.NewSearchInput(s, "Filter", "type to filter pages...")
	bar := status.NewBar(s)
	bar.SetHints(keys.BrowserHelp())

	return &View{
		browse:  browse,
		styles:  s,
		keys:    keys,
		filter:  filter,
		tree:    tree.NewSectionTree(s),
		bar:     bar,
		width:   80,
		height:  24,
		loading: true,
	}
}

// Init starts loading the section tree and focuses the filter.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.filter.Focus(), v.loadSections())
}

// loadSections queries the browse service off the update loop.
func (v *View) loadSections() tea.Cmd {
	return func() tea.Msg {
		sections, err := v.browse.Sections(context.Background())
		return messages.SectionsLoaded{Sections: sections, Err: err}
	}
}

// Update handles messages for the browser view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SectionsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.bar.Clear()
		v.allSections = msg.Sections
		v.applyFilter()
		return v, nil

	case messages.IndexChanged:
		v.loading = true
		v.bar.SetState(status.StateLoading)
		return v, v.loadSections()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

// handleKey routes navigation keys to the tree and everything else to
// the filter field.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keyStr == "ctrl+c":
		return v, tea.Quit

	case keyStr == "esc":
		if v.filter.Value() != "" {
			v.filter.Reset()
			v.applyFilter()
			return v, nil
		}
		return v, func() tea.Msg { return messages.Quit{} }

	case keyStr == "up":
		v.tree.MoveUp()
		return v, nil

	case keyStr == "down":
		v.tree.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keys.Select):
		if v.tree.Toggle() {
			return v, nil
		}
		if page := v.tree.SelectedPage(); page != nil {
			selected := *page
			return v, func() tea.Msg { return messages.PageSelected{Page: selected} }
		}
		return v, nil
	}

	before := v.filter.Value()
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	if v.filter.Value() != before {
		v.applyFilter()
	}
	return v, cmd
}

// applyFilter recomputes the visible tree from the cached full listing
// and the current filter text.
func (v *View) applyFilter() {
	query := strings.TrimSpace(v.filter.Value())
	filtered := v.browse.Filter(v.allSections, query)
	v.tree.SetSections(filtered, query != "")
}

// View renders the browser view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.filter.View())
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading manual sections..."))
	} else {
		b.WriteString(v.tree.View())
	}

	content := lipgloss.NewStyle().Height(v.height - 1).Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, content, v.bar.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.filter.SetWidth(width)
	v.tree.SetDimensions(width, height-6)
	v.bar.SetWidth(width)
}

// FilterValue returns the current filter text.
func (v *View) FilterValue() string {
	return v.filter.Value()
}

// Tree exposes the tree component for tests.
func (v *View) Tree() *tree.SectionTree {
	return v.tree
}
