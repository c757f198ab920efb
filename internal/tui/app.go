package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ringside/internal/model"
)

type connState int

const (
	stateConnected    connState = iota
	stateDisconnected connState = iota
)

// Refresher is the slice of the polling session the TUI drives: the `r` key
// requests an out-of-band fetch. The session coalesces and serializes these
// itself, so the app never tracks in-flight state.
type Refresher interface {
	ManualRefresh()
}

// App is the root Bubble Tea model for ringside.
type App struct {
	refresher    Refresher
	serverURL    string
	pollInterval time.Duration

	// Poll state, fed by OutcomeMsg from the session's sink.
	current          *model.HealthSnapshot
	lastError        *model.ErrorDetail
	consecutiveFails int
	connState        connState
	lastUpdated      time.Time

	// Alerts table state.
	alerts tableModel

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates a new App. refresher may be nil in tests.
func NewApp(refresher Refresher, serverURL string, interval time.Duration) *App {
	return &App{
		refresher:    refresher,
		serverURL:    serverURL,
		pollInterval: interval,
		connState:    stateDisconnected,
		alerts:       newTableModel(alertColumns),
	}
}

// Init implements tea.Model. The polling session drives all fetching, so
// there is no initial command.
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case OutcomeMsg:
		if msg.Outcome.OK() {
			app.current = msg.Outcome.Snapshot
			app.consecutiveFails = 0
			app.lastError = nil
			app.connState = stateConnected
			app.lastUpdated = msg.CompletedAt
		} else {
			app.consecutiveFails++
			app.lastError = msg.Outcome.Err
			app.connState = stateDisconnected
		}
		return app, nil

	case tea.KeyMsg:
		// Route everything to the filter input while it is active, except
		// the keys the table handles itself (enter/esc).
		if app.alerts.searching {
			var cmd tea.Cmd
			app.alerts, cmd = app.alerts.Update(msg)
			return app, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if app.refresher != nil {
				app.refresher.ManualRefresh()
			}
			return app, nil
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			return app, nil
		default:
			var cmd tea.Cmd
			app.alerts, cmd = app.alerts.Update(msg)
			return app, cmd
		}
	}

	return app, nil
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	var parts []string

	if h := renderHeader(app); h != "" {
		parts = append(parts, h)
	}
	if o := renderOverview(app); o != "" {
		parts = append(parts, o)
	}
	if a := renderAlerts(app); a != "" {
		parts = append(parts, a)
	}
	if d := renderDecisions(app); d != "" {
		parts = append(parts, d)
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}
