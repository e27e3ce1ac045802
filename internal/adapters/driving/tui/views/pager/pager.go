// Package pager implements the rendered page view with highlight search.
package pager

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

// View is the pager view. It shows a rendered manual page and carries
// the highlight search session for it. Match offsets are byte offsets
// into the raw document, so rendering slices each line at offsets
// relative to the line start.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap

	search  *input.SearchInput
	bar     *status.Bar
	session *domain.SearchSession

	page    domain.Page
	content string
	loadErr error

	// lines is content split on newlines; lineStarts[i] is the byte
	// offset of lines[i] within content.
	lines      []string
	lineStarts []int

	offset int
	width  int
	height int
}

// NewView creates a new pager view.
func NewView(s *styles.Styles, caseSensitive bool) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	keys := keymap.DefaultKeyMap()

	bar := status.NewBar(s)
	bar.SetHints(keys.PagerHelp())

	return &View{
		styles:  s,
		keys:    keys,
		search:  input.NewSearchInput(s, "Search", "highlight in page..."),
		bar:     bar,
		session: domain.NewSearchSession(caseSensitive),
		width:   80,
		height:  24,
	}
}

// Init initialises the pager view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetPage installs a freshly loaded page. Any previous search session
// state is discarded with the old document.
func (v *View) SetPage(page domain.Page, content string, err error) {
	v.page = page
	v.content = content
	v.loadErr = err
	v.offset = 0
	v.search.Reset()
	v.search.Blur()
	v.session.SetDocument(content)
	v.bar.Clear()

	v.lines = strings.Split(content, "\n")
	v.lineStarts = make([]int, len(v.lines))
	pos := 0
	for i, line := range v.lines {
		v.lineStarts[i] = pos
		pos += len(line) + 1
	}
}

// Update handles messages for the pager view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if v.search.Focused() {
			return v.handleSearchKey(msg)
		}
		return v.handleKey(msg)
	}
	return v, nil
}

// handleSearchKey handles keys while the search field has focus.
func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return v, tea.Quit

	case "esc":
		v.search.Blur()
		return v, nil

	case "enter":
		v.search.Blur()
		v.runSearch()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return v, cmd
}

// handleKey handles keys while the page has focus.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Quit):
		return v, tea.Quit

	case keymap.Matches(keyStr, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewBrowser}
		}

	case keymap.Matches(keyStr, v.keys.FocusSearch):
		return v, v.search.Focus()

	case keymap.Matches(keyStr, v.keys.NextMatch):
		v.navigate(domain.Next)
		return v, nil

	case keymap.Matches(keyStr, v.keys.PrevMatch):
		v.navigate(domain.Prev)
		return v, nil

	case keyStr == "up", keyStr == "k":
		v.scrollBy(-1)
	case keyStr == "down", keyStr == "j":
		v.scrollBy(1)
	case keyStr == "pgup", keyStr == "ctrl+u":
		v.scrollBy(-v.pageSize())
	case keyStr == "pgdown", keyStr == "ctrl+d", keyStr == " ":
		v.scrollBy(v.pageSize())
	case keymap.Matches(keyStr, v.keys.Top):
		v.offset = 0
	case keymap.Matches(keyStr, v.keys.Bottom):
		v.offset = v.maxOffset()
	}

	return v, nil
}

// runSearch applies the current search text to the session and moves
// the viewport to the current match.
func (v *View) runSearch() {
	v.session.Apply(v.search.Value())

	switch v.session.State() {
	case domain.StateIdle:
		v.bar.Clear()
	default:
		v.bar.SetMatchCount(v.session.FormatCount())
		v.scrollToCurrent()
	}
}

// navigate moves the current match and follows it with the viewport.
func (v *View) navigate(dir domain.Direction) {
	if _, ok := v.session.Navigate(dir); !ok {
		return
	}
	v.bar.SetMatchCount(v.session.FormatCount())
	v.scrollToCurrent()
}

// scrollToCurrent scrolls so the current match is visible, biased a
// third of the way down the viewport.
func (v *View) scrollToCurrent() {
	m, ok := v.session.Current()
	if !ok {
		return
	}
	line := v.lineForOffset(m.Start)
	target := line - v.pageSize()/3
	if target < 0 {
		target = 0
	}
	if target > v.maxOffset() {
		target = v.maxOffset()
	}
	v.offset = target
}

// lineForOffset returns the index of the line containing the byte
// offset.
func (v *View) lineForOffset(off int) int {
	i := sort.Search(len(v.lineStarts), func(i int) bool {
		return v.lineStarts[i] > off
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// pageSize is the number of content lines that fit in the viewport.
func (v *View) pageSize() int {
	// search field, spacing and status bar take four lines
	size := v.height - 4
	if size < 1 {
		size = 1
	}
	return size
}

// maxOffset is the largest valid scroll offset.
func (v *View) maxOffset() int {
	max := len(v.lines) - v.pageSize()
	if max < 0 {
		max = 0
	}
	return max
}

// scrollBy moves the viewport, clamped to the document.
func (v *View) scrollBy(delta int) {
	v.offset += delta
	if v.offset < 0 {
		v.offset = 0
	}
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
}

// View renders the pager view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.page.String()))
	b.WriteString("  ")
	b.WriteString(v.search.View())
	b.WriteString("\n\n")

	if v.loadErr != nil {
		b.WriteString(v.styles.Error.Render("Could not render page: " + v.loadErr.Error()))
	} else {
		b.WriteString(v.renderContent())
	}

	content := lipgloss.NewStyle().Height(v.height - 1).Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, content, v.bar.View())
}

// renderContent renders the visible window with match highlighting.
func (v *View) renderContent() string {
	end := v.offset + v.pageSize()
	if end > len(v.lines) {
		end = len(v.lines)
	}

	matches := v.session.Matches()
	current := v.session.CurrentIndex()

	out := make([]string, 0, end-v.offset)
	for i := v.offset; i < end; i++ {
		out = append(out, v.renderLine(i, matches, current))
	}
	return strings.Join(out, "\n")
}

// renderLine highlights the spans of matches that intersect line i.
// Offsets in the match set are absolute, so they are shifted by the
// line start before slicing.
func (v *View) renderLine(i int, matches domain.MatchSet, current int) string {
	line := v.lines[i]
	if len(matches) == 0 {
		return line
	}

	lineStart := v.lineStarts[i]
	lineEnd := lineStart + len(line)

	var b strings.Builder
	pos := 0
	for mi, m := range matches {
		if m.End <= lineStart || m.Start >= lineEnd {
			continue
		}
		start := m.Start - lineStart
		if start < 0 {
			start = 0
		}
		end := m.End - lineStart
		if end > len(line) {
			end = len(line)
		}
		if start > pos {
			b.WriteString(line[pos:start])
		}
		style := v.styles.Match
		if mi == current {
			style = v.styles.CurrentMatch
		}
		b.WriteString(style.Render(line[start:end]))
		pos = end
	}
	if pos < len(line) {
		b.WriteString(line[pos:])
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.search.SetWidth(width / 2)
	v.bar.SetWidth(width)
}

// Session exposes the search session for tests and the CLI bridge.
func (v *View) Session() *domain.SearchSession {
	return v.session
}

// Offset returns the current scroll offset.
func (v *View) Offset() int {
	return v.offset
}

// Page returns the currently displayed page.
func (v *View) Page() domain.Page {
	return v.page
}
