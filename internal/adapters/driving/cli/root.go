// Package cli provides the cobra command-line interface for manex.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/manex-cli/internal/core/domain"
	"github.com/custodia-labs/manex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

// version is the manex version, set at build time via ldflags.
var version = "0.1.0"

var verbose bool

// Services injected by main before Execute.
var (
	browseService driving.BrowseService
	pageService   driving.PageService

	// caseSensitive is the default highlight matching policy from config.
	caseSensitive bool
)

var rootCmd = &cobra.Command{
	Use:   "manex",
	Short: "Explore and search system manual pages",
	Long: `Manex is an explorer for the system manual.

Run without arguments to launch the interactive terminal UI: browse
pages by section, filter them as you type, open a page and highlight
every occurrence of a search term inside it.

Controls:
  (type)   - Filter the page tree
  ↑/↓      - Navigate
  Enter    - Expand section / open page
  ctrl+f / - Search within an open page
  n/N      - Next / previous match
  Esc      - Back / Cancel
  q        - Quit`,
	RunE:         runTUI,
	SilenceUsage: true,
}

// SetServices injects the core services used by the commands.
func SetServices(browse driving.BrowseService, page driving.PageService) {
	browseService = browse
	pageService = page
}

// SetCaseSensitive sets the default highlight matching policy.
func SetCaseSensitive(cs bool) {
	caseSensitive = cs
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps a stack trace visible after the alternate
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(browseService, pageService)
	ports.CaseSensitive = caseSensitive

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// resolvePage turns a name and an optional section into a concrete
// page. Without a section the listing is scanned in section order and
// the first page with that name wins, matching what man itself does.
func resolvePage(ctx context.Context, name, section string) (domain.Page, error) {
	if section != "" {
		return domain.Page{Name: name, Section: section}, nil
	}
	if browseService == nil {
		return domain.Page{}, fmt.Errorf("browse service not configured")
	}

	sections, err := browseService.Sections(ctx)
	if err != nil {
		return domain.Page{}, err
	}
	for _, sec := range sections {
		for _, p := range sec.Pages {
			if p.Name == name {
				return p, nil
			}
		}
	}
	return domain.Page{}, fmt.Errorf("%q: %w", name, domain.ErrPageNotFound)
}
