package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/views/browser"
	"github.com/custodia-labs/manex-cli/internal/adapters/driving/tui/views/pager"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// browserView is the section tree with the filter field.
	browserView *browser.View

	// pagerView shows a rendered page with the highlight search bar.
	pagerView *pager.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		browserView: browser.NewView(ports.Browse, s),
		pagerView:   pager.NewView(s, ports.CaseSensitive),
		currentView: messages.ViewBrowser,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("manex - Manual Explorer"),
		a.browserView.Init(),
		a.listenForIndexChanges(),
	)
}

// listenForIndexChanges waits for the browse service to report that the
// manual directories changed. It re-arms itself after each event.
func (a *App) listenForIndexChanges() tea.Cmd {
	changes := a.ports.Browse.Changes()
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		<-changes
		return messages.IndexChanged{}
	}
}

// loadPage fetches the rendered page off the update loop.
func (a *App) loadPage(pageMsg messages.PageSelected) tea.Cmd {
	ctx := a.ctx
	svc := a.ports.Page
	return func() tea.Msg {
		content, err := svc.Load(ctx, pageMsg.Page)
		return messages.PageLoaded{Page: pageMsg.Page, Content: content, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.browserView.SetDimensions(msg.Width, msg.Height)
		a.pagerView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewPager:
			a.pagerView, cmd = a.pagerView.Update(msg)
		default:
			a.browserView, cmd = a.browserView.Update(msg)
		}
		return a, cmd

	case messages.PageSelected:
		return a, a.loadPage(msg)

	case messages.PageLoaded:
		a.err = msg.Err
		a.pagerView.SetPage(msg.Page, msg.Content, msg.Err)
		a.currentView = messages.ViewPager
		return a, nil

	case messages.IndexChanged:
		// Refresh the tree and re-arm the listener.
		a.browserView, cmd = a.browserView.Update(msg)
		return a, tea.Batch(cmd, a.listenForIndexChanges())

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewPager:
		a.pagerView, cmd = a.pagerView.Update(msg)
	default:
		a.browserView, cmd = a.browserView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPager:
		return a.pagerView.View()
	default:
		return a.browserView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Browser exposes the browser view for tests.
func (a *App) Browser() *browser.View {
	return a.browserView
}

// Pager exposes the pager view for tests.
func (a *App) Pager() *pager.View {
	return a.pagerView
}
