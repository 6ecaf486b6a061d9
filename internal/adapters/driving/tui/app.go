package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/hotkey"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/views/overlay"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/views/reader"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// TriggerLabel is the search trigger shown in the top bar.
const TriggerLabel = "Search docs  ctrl+k"

// bodyTop is the screen row where the overlay or reader starts.
const bodyTop = 1

// Option configures an App.
type Option func(*App)

// WithShortcutDisabled keeps the global hotkey unregistered regardless of
// settings.
func WithShortcutDisabled() Option {
	return func(a *App) {
		a.noShortcut = true
	}
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// hotkeys holds the global shortcuts. releaseToggle is non-nil while
	// ctrl+k is registered.
	hotkeys       *hotkey.Registry
	releaseToggle func()
	noShortcut    bool

	settings      domain.Settings
	searchEnabled bool

	overlay   *overlay.View
	reader    *reader.View
	statusBar *status.Bar

	// currentView tracks which view is active. previousView is restored
	// when help closes.
	currentView  messages.ViewType
	previousView messages.ViewType

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
func NewApp(ports *Ports, opts ...Option) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultSettings()
	if ports.Settings != nil {
		loaded, err := ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("creating app: %w", err)
		}
		settings = *loaded
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		hotkeys: hotkey.NewRegistry(),
		overlay: overlay.NewView(s, km, overlay.Config{
			Search:       ports.Search,
			Selection:    ports.Selection,
			ResultAction: ports.ResultAction,
			AssistantURL: settings.Assistant.URL,
			StallDelay:   settings.Search.StallDelay,
		}),
		reader: reader.NewView(s, km, reader.Config{
			Pages:        ports.Pages,
			Copy:         ports.Copy,
			ResultAction: ports.ResultAction,
			HomePath:     settings.Site.HomePath,
		}),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewHome,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.applySettings(settings)
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.overlay.WithContext(ctx)
	a.reader.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It sets the window title and loads the home page.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("docsearch"),
		a.reader.Home(),
	)
}

// applySettings reconfigures the views and the hotkey for new settings.
func (a *App) applySettings(settings domain.Settings) {
	a.settings = settings
	a.searchEnabled = a.ports.Search.Enabled()

	a.overlay.SetAssistantURL(settings.Assistant.URL)
	a.overlay.SetStallDelay(settings.Search.StallDelay)
	a.reader.SetHomePath(settings.Site.HomePath)
	a.statusBar.SetSearchEnabled(a.searchEnabled)

	if !a.searchEnabled {
		if a.overlay.IsOpen() {
			a.overlay.Close()
		}
		if settings.IsDevelopment() || logger.IsDevelopment() {
			logger.Warn("search disabled: missing %s", strings.Join(settings.Search.MissingKeys(), ", "))
		}
	}

	a.syncShortcut()
}

// syncShortcut registers ctrl+k when search is enabled and the shortcut is
// allowed, and releases it otherwise.
func (a *App) syncShortcut() {
	want := a.searchEnabled && !a.settings.Shortcut.Disabled && !a.noShortcut

	switch {
	case want && a.releaseToggle == nil:
		a.releaseToggle = a.hotkeys.Register(a.keymap.ToggleSearch, a.toggleOverlay)
		logger.Debug("registered %s", a.keymap.ToggleSearch.Help().Key)
	case !want && a.releaseToggle != nil:
		a.releaseToggle()
		a.releaseToggle = nil
		logger.Debug("released %s", a.keymap.ToggleSearch.Help().Key)
	}
}

func (a *App) toggleOverlay() tea.Cmd {
	if !a.searchEnabled {
		return nil
	}
	return a.overlay.Toggle()
}

// Close releases the global shortcut. The app ignores ctrl+k afterwards.
func (a *App) Close() {
	if a.releaseToggle != nil {
		a.releaseToggle()
		a.releaseToggle = nil
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncStatus()
	return a, cmd
}

//nolint:gocyclo // central message handler requires complexity
func (a *App) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case messages.SearchCompleted, messages.SearchStalled, spinner.TickMsg:
		a.overlay, cmd = a.overlay.Update(msg)
		return cmd

	case messages.NavigationRequested:
		return a.navigate(msg.Navigation)

	case messages.PageLoaded:
		a.reader, cmd = a.reader.Update(msg)
		if msg.Err != nil {
			logger.Warn("load %s: %v", msg.Target, msg.Err)
		}
		return cmd

	case messages.CopyCompleted:
		a.reader, cmd = a.reader.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
		}
		return cmd

	case messages.CopyReset:
		a.reader, cmd = a.reader.Update(msg)
		return cmd

	case messages.ActionCompleted:
		if msg.Err != nil {
			logger.Warn("%s: %v", msg.Action, msg.Err)
			a.err = msg.Err
		}
		return nil

	case messages.ViewChanged:
		a.setView(msg.View)
		return nil

	case messages.SettingsChanged:
		if msg.Settings != nil {
			a.applySettings(*msg.Settings)
		}
		return nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return nil

	case messages.Quit:
		return tea.Quit
	}

	if a.overlay.IsOpen() {
		a.overlay, cmd = a.overlay.Update(msg)
		return cmd
	}
	a.reader, cmd = a.reader.Update(msg)
	return cmd
}

// handleKeyMsg routes keys: global shortcuts, then the overlay when open,
// then help, then the reader.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if cmd, ok := a.hotkeys.Dispatch(msg); ok {
		return cmd
	}

	var cmd tea.Cmd
	if a.overlay.IsOpen() {
		a.overlay, cmd = a.overlay.Update(msg)
		return cmd
	}

	a.err = nil
	keyStr := msg.String()

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(keyStr, a.keymap.Cancel) || keymap.Matches(keyStr, a.keymap.Help) {
			a.setView(a.previousView)
		}
		if keymap.Matches(keyStr, a.keymap.Quit) {
			return tea.Quit
		}
		return nil
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return tea.Quit
	case keymap.Matches(keyStr, a.keymap.Help):
		a.setView(messages.ViewHelp)
		return nil
	case keymap.Matches(keyStr, a.keymap.OpenSearch) && a.searchEnabled:
		return a.overlay.Open()
	}

	a.reader, cmd = a.reader.Update(msg)
	return cmd
}

func (a *App) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	var cmd tea.Cmd
	if a.overlay.IsOpen() {
		msg.Y -= bodyTop
		a.overlay, cmd = a.overlay.Update(msg)
		return cmd
	}

	if msg.Y == 0 && a.searchEnabled && a.onTrigger(msg.X) &&
		msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return a.overlay.Open()
	}

	a.reader, cmd = a.reader.Update(msg)
	return cmd
}

func (a *App) onTrigger(x int) bool {
	return x >= a.width-lipgloss.Width(a.renderTrigger())
}

// navigate opens in-app targets in the reader and everything else in the
// browser.
func (a *App) navigate(nav domain.Navigation) tea.Cmd {
	switch nav.Kind {
	case domain.NavigateInApp:
		a.setView(messages.ViewReader)
		return a.reader.Load(nav.Target())
	case domain.NavigateExternal:
		if a.ports.ResultAction == nil {
			return nil
		}
		actions := a.ports.ResultAction
		ctx := a.ctx
		url := nav.URL
		return func() tea.Msg {
			return messages.ActionCompleted{Action: "open", Err: actions.OpenExternal(ctx, url)}
		}
	case domain.NavigateNone:
	}
	return nil
}

func (a *App) setView(view messages.ViewType) {
	if view == messages.ViewHelp && a.currentView != messages.ViewHelp {
		a.previousView = a.currentView
	}
	a.currentView = view
}

// syncStatus derives the status bar state from the views.
func (a *App) syncStatus() {
	a.statusBar.SetMessage("")
	switch {
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	case a.overlay.IsOpen():
		a.statusBar.SetState(status.StateOverlay)
		a.statusBar.SetResultCount(a.overlay.List().Count())
	case a.currentView == messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case a.reader.Loading():
		a.statusBar.SetState(status.StateLoading)
	case a.reader.Copied():
		a.statusBar.SetState(status.StateCopied)
	case a.reader.Page() != nil:
		a.statusBar.SetState(status.StateReading)
		a.statusBar.SetMessage(a.reader.Page().Title)
	default:
		a.statusBar.SetState(status.StateReady)
	}
}

// View implements tea.Model.
// It renders the top bar, the active view and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch {
	case a.overlay.IsOpen():
		body = a.overlay.View()
	case a.currentView == messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.reader.View()
	}

	bodyHeight := max(1, a.height-2)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, a.renderTopBar(), body, a.statusBar.View())
}

func (a *App) renderTopBar() string {
	title := a.styles.Title.Render("docsearch")
	if !a.searchEnabled {
		return title
	}
	trigger := a.renderTrigger()
	gap := max(1, a.width-lipgloss.Width(title)-lipgloss.Width(trigger))
	return title + strings.Repeat(" ", gap) + trigger
}

func (a *App) renderTrigger() string {
	return a.styles.Trigger.Render(TriggerLabel)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	search := `Search:
  /, ctrl+k   Open search
  ↑/↓         Move through results
  enter       Open result
  tab         Switch Search / Ask AI
  ctrl+y      Copy result link
  esc         Clear query, then close

`
	if !a.searchEnabled {
		search = "Search is disabled until search.app_id, search.api_key and search.index_name are set.\n\n"
	}

	return search + `Reader:
  ↑/↓, pgup/pgdn  Scroll
  c           Copy page as markdown
  o           Open page in browser
  b           Back
  g           Home

General:
  ?           Toggle help
  q, ctrl+c   Quit

[esc] back`
}

// NewProgram creates the Bubbletea program for the app. Callers that need
// to push messages from other goroutines use the returned program's Send.
func (a *App) NewProgram() *tea.Program {
	return tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	)
}

// Run starts the TUI application and releases the shortcut on exit.
func (a *App) Run() error {
	defer a.Close()
	_, err := a.NewProgram().Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Overlay returns the search overlay.
func (a *App) Overlay() *overlay.View {
	return a.overlay
}

// Reader returns the page reader.
func (a *App) Reader() *reader.View {
	return a.reader
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// SearchEnabled reports whether search is configured.
func (a *App) SearchEnabled() bool {
	return a.searchEnabled
}

// ShortcutRegistered reports whether ctrl+k is live.
func (a *App) ShortcutRegistered() bool {
	return a.releaseToggle != nil
}

// Settings returns the settings the app was last configured with.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := max(1, height-2)
	a.overlay.SetDimensions(width, bodyHeight)
	a.reader.SetDimensions(width, bodyHeight)
	a.statusBar.SetWidth(width)
}
