package domain

import "strings"

// SessionState describes where the search bar is in its lifecycle.
type SessionState int

const (
	// StateIdle means no query is active and nothing is highlighted.
	StateIdle SessionState = iota

	// StateSearching means a query is active and produced matches.
	StateSearching

	// StateNoMatches means a query is active but matched nothing.
	StateNoMatches
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateNoMatches:
		return "no_matches"
	default:
		return "idle"
	}
}

// SearchSession owns the in-page highlight search state for the single
// interactive session: the current document, the query, the computed
// match set, and the current match pointer.
//
// The match set is always recomputed in full from the document and the
// query; there is no incremental update. Replacing the document resets
// the session to idle before any further action is processed.
type SearchSession struct {
	caseSensitive bool

	document string
	query    string
	matches  MatchSet
	current  int // -1 when undefined
}

// NewSearchSession creates an idle session with the given matching policy.
func NewSearchSession(caseSensitive bool) *SearchSession {
	return &SearchSession{caseSensitive: caseSensitive, current: -1}
}

// SetDocument replaces the document and clears query, matches, and the
// current match pointer.
func (s *SearchSession) SetDocument(document string) {
	s.document = document
	s.Clear()
}

// Clear drops the query and all matches, returning the session to idle.
// The document is kept.
func (s *SearchSession) Clear() {
	s.query = ""
	s.matches = nil
	s.current = -1
}

// Apply sets the query and recomputes the match set from scratch.
// The current match pointer is reset to the first match, or cleared when
// nothing matched. It returns the new match set.
//
// An empty or all-whitespace query is treated as "no query": the session
// returns to idle with all highlighting cleared.
func (s *SearchSession) Apply(query string) MatchSet {
	s.query = strings.TrimSpace(query)
	s.matches = Search(s.document, query, s.caseSensitive)
	if len(s.matches) > 0 {
		s.current = 0
	} else {
		s.current = -1
	}
	return s.matches
}

// Navigate moves the current match pointer in the given direction with
// wrap-around and returns the match now current. With no active matches
// it is a no-op and reports false.
func (s *SearchSession) Navigate(dir Direction) (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	s.current = s.matches.Navigate(s.current, dir)
	return s.matches[s.current], true
}

// Current returns the match the pointer rests on, if any.
func (s *SearchSession) Current() (Match, bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return Match{}, false
	}
	return s.matches[s.current], true
}

// CurrentIndex returns the current match index, or -1 when undefined.
func (s *SearchSession) CurrentIndex() int {
	return s.current
}

// Matches returns the current match set.
func (s *SearchSession) Matches() MatchSet {
	return s.matches
}

// Query returns the active query, empty when idle.
func (s *SearchSession) Query() string {
	return s.query
}

// Document returns the document under search.
func (s *SearchSession) Document() string {
	return s.document
}

// CaseSensitive reports the matching policy the session was built with.
func (s *SearchSession) CaseSensitive() bool {
	return s.caseSensitive
}

// State returns the session's position in the search-bar state machine.
func (s *SearchSession) State() SessionState {
	switch {
	case s.query == "":
		return StateIdle
	case len(s.matches) == 0:
		return StateNoMatches
	default:
		return StateSearching
	}
}

// FormatCount renders the match counter for the session's current state.
func (s *SearchSession) FormatCount() string {
	return FormatCount(s.matches, s.current)
}
