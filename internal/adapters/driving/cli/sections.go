package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

var sectionsJSON bool

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List manual sections and their page counts",
	Long: `Lists the manual sections known to the host man system.

The default output is one line per section with its page count. With
--json the full listing, including every page name, is printed as JSON.`,
	Args: cobra.NoArgs,
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().BoolVar(&sectionsJSON, "json", false, "output the full listing as JSON")
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	if browseService == nil {
		return errors.New("browse service not configured")
	}

	sections, err := browseService.Sections(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing sections: %w", err)
	}

	if sectionsJSON {
		return outputSectionsJSON(cmd, sections)
	}

	for _, sec := range sections {
		cmd.Printf("%-8s %d pages\n", sec.ID, len(sec.Pages))
	}
	cmd.Printf("total    %d pages in %d sections\n", domain.PageCount(sections), len(sections))
	return nil
}

func outputSectionsJSON(cmd *cobra.Command, sections []domain.Section) error {
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
