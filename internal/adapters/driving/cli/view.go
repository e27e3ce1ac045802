package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var viewCmd = &cobra.Command{
	Use:   "view NAME [SECTION]",
	Short: "Print a rendered manual page",
	Long: `Renders a manual page to plain text and prints it to stdout.

Without a section the page is looked up across all manual sections in
section order. Output is the page text only, suitable for piping; a
trailing status line is added when stdout is a terminal.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if pageService == nil {
		return errors.New("page service not configured")
	}

	section := ""
	if len(args) > 1 {
		section = args[1]
	}

	page, err := resolvePage(cmd.Context(), args[0], section)
	if err != nil {
		return err
	}

	content, err := pageService.Load(cmd.Context(), page)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", page.String(), err)
	}

	cmd.Print(content)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.Printf("\n[%s]\n", page.String())
	}
	return nil
}
