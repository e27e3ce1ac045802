package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

var (
	searchSection  string
	searchCaseFlag bool
)

var searchCmd = &cobra.Command{
	Use:   "search NAME QUERY",
	Short: "Search within a rendered manual page",
	Long: `Renders a manual page and finds every literal occurrence of a query
in its text, the same matching the interactive highlight search uses.

Each match is printed with its position counter and the line it occurs
on. Matching is case-insensitive unless --case-sensitive is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSection, "section", "s", "", "manual section to look in")
	searchCmd.Flags().BoolVar(&searchCaseFlag, "case-sensitive", false, "match case exactly")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if pageService == nil {
		return errors.New("page service not configured")
	}

	name, query := args[0], args[1]

	page, err := resolvePage(cmd.Context(), name, searchSection)
	if err != nil {
		return err
	}

	content, err := pageService.Load(cmd.Context(), page)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", page.String(), err)
	}

	matches := domain.Search(content, query, searchCaseFlag)
	if len(matches) == 0 {
		cmd.Printf("%s in %s\n", domain.FormatCount(matches, -1), page.String())
		return nil
	}

	cmd.Printf("%d matches for %q in %s\n", len(matches), strings.TrimSpace(query), page.String())
	for i, m := range matches {
		line, text := lineOf(content, m.Start)
		cmd.Printf("%-18s line %4d: %s\n", domain.FormatCount(matches, i), line, text)
	}
	return nil
}

// lineOf returns the 1-based line number containing the byte offset and
// the text of that line.
func lineOf(content string, offset int) (int, string) {
	line := 1 + strings.Count(content[:offset], "\n")

	start := strings.LastIndexByte(content[:offset], '\n') + 1
	end := strings.IndexByte(content[offset:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += offset
	}
	return line, strings.TrimSpace(content[start:end])
}
