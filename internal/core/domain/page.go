package domain

import (
	"fmt"
	"strings"
)

// Page identifies a single manual page within a section.
type Page struct {
	// Name is the page name, e.g. "ls" or "printf".
	Name string `json:"name"`

	// Section is the manual section identifier, e.g. "1", "3", "3pm", "n".
	Section string `json:"section"`
}

// String returns the tree entry form "name.section", e.g. "ls.1".
func (p Page) String() string {
	return p.Name + "." + p.Section
}

// Valid reports whether the page has both a name and a section.
func (p Page) Valid() bool {
	return p.Name != "" && p.Section != ""
}

// ParsePageEntry parses a tree entry of the form "name.section".
// The section is everything after the last dot, so names containing
// dots ("git-rev-parse" does not, but "after.5" style names do) survive.
func ParsePageEntry(entry string) (Page, error) {
	idx := strings.LastIndex(entry, ".")
	if idx <= 0 || idx == len(entry)-1 {
		return Page{}, fmt.Errorf("%w: page entry %q", ErrInvalidInput, entry)
	}
	return Page{Name: entry[:idx], Section: entry[idx+1:]}, nil
}

// Section is a manual section and the pages it contains, in display order.
type Section struct {
	// ID is the section identifier, e.g. "1", "8", "3pm".
	ID string `json:"id"`

	// Pages are the pages of this section, sorted by name.
	Pages []Page `json:"pages"`
}

// Title returns the display label for the section node.
func (s Section) Title() string {
	return "Section " + s.ID
}

// PageCount returns the total number of pages across all sections.
func PageCount(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Pages)
	}
	return n
}
