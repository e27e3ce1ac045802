package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a single literal occurrence of a query in a document,
// expressed as byte offsets [Start, End) into the document.
type Match struct {
	Start int
	End   int
}

// MatchSet is an ordered sequence of non-overlapping matches in
// document order.
type MatchSet []Match

// Direction selects which neighbouring match to move to.
type Direction int

const (
	// Next moves to the following match, wrapping past the last.
	Next Direction = iota

	// Prev moves to the preceding match, wrapping before the first.
	Prev
)

// Search scans document left-to-right for every non-overlapping literal
// occurrence of query and returns the matches in document order.
//
// Leading and trailing whitespace in the query is ignored; an empty or
// all-whitespace query yields a nil MatchSet. Search never fails: an
// unmatched query simply produces no matches.
func Search(document, query string, caseSensitive bool) MatchSet {
	query = strings.TrimSpace(query)
	if query == "" || document == "" {
		return nil
	}

	if caseSensitive {
		var matches MatchSet
		for i := 0; ; {
			j := strings.Index(document[i:], query)
			if j < 0 {
				break
			}
			start := i + j
			end := start + len(query)
			matches = append(matches, Match{Start: start, End: end})
			i = end
		}
		return matches
	}

	// Case-insensitive matching is done rune-wise against the original
	// document so byte offsets stay exact even when case folding changes
	// a rune's encoded length.
	var matches MatchSet
	for i := 0; i < len(document); {
		if end, ok := foldMatchAt(document, i, query); ok {
			matches = append(matches, Match{Start: i, End: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(document[i:])
		i += size
	}
	return matches
}

// foldMatchAt reports whether query matches document at byte offset
// start under simple case folding, returning the end offset on success.
func foldMatchAt(document string, start int, query string) (int, bool) {
	i := start
	for _, qr := range query {
		if i >= len(document) {
			return 0, false
		}
		dr, size := utf8.DecodeRuneInString(document[i:])
		if dr != qr && unicode.ToLower(dr) != unicode.ToLower(qr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// Navigate returns the match index reached by moving from current in the
// given direction, wrapping at either end. It returns -1 when the match
// set is empty. A current of -1 is treated as "before the first match",
// so Next lands on 0 and Prev on the last match.
func (m MatchSet) Navigate(current int, dir Direction) int {
	n := len(m)
	if n == 0 {
		return -1
	}
	switch dir {
	case Prev:
		if current < 0 {
			return n - 1
		}
		return (current - 1 + n) % n
	default:
		return (current + 1) % n
	}
}

// FormatCount renders the human-readable match counter shown next to the
// search bar: "0 matches" for an empty set, otherwise "K of N matches"
// where K is the 1-based current position.
func FormatCount(matches MatchSet, current int) string {
	if len(matches) == 0 {
		return "0 matches"
	}
	if current < 0 || current >= len(matches) {
		current = 0
	}
	return fmt.Sprintf("%d of %d matches", current+1, len(matches))
}
