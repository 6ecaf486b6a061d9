// Package overlay provides the search overlay: a modal panel holding the
// mode header, the result list and the Ask AI panel.
package overlay

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/components/header"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/querystate"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/views/askai"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// FrameDelay defers navigation after a selection so the close renders first.
const FrameDelay = time.Second / 60

// ListTop is the first screen row of the result list: the border and the
// header line sit above it, then a divider.
const ListTop = 3

const maxPanelWidth = 90

// Config holds the services the overlay drives.
type Config struct {
	Search       driving.SearchService
	Selection    driving.SelectionService
	ResultAction driving.ResultActionService
	AssistantURL string
	StallDelay   time.Duration
}

// View is the search overlay.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	session domain.SearchSession

	header  *header.Header
	list    *list.ResultList
	askai   *askai.Panel
	tracker *querystate.Tracker

	selection driving.SelectionService
	actions   driving.ResultActionService
	ctx       context.Context

	width  int
	height int
}

// NewView creates a closed overlay.
func NewView(s *styles.Styles, km *keymap.KeyMap, cfg Config) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		session:   domain.NewSearchSession(),
		tracker:   querystate.NewTracker(cfg.Search, cfg.StallDelay),
		selection: cfg.Selection,
		actions:   cfg.ResultAction,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}

	v.list = list.NewResultList(s, list.Callbacks{
		FocusInput: func() tea.Cmd { return v.header.Focus() },
		Select:     v.Select,
		Close:      v.closeCmd,
	})
	v.header = header.New(s, v.list, header.Callbacks{
		Refine: v.refine,
		Close:  v.closeCmd,
	})
	v.askai = askai.New(s, cfg.AssistantURL, v.openExternal)

	return v
}

// WithContext sets the context used for queries.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the overlay.
func (v *View) Init() tea.Cmd {
	return v.header.Init()
}

// Open shows the overlay in Search mode with the input focused and its
// content selected.
func (v *View) Open() tea.Cmd {
	v.session.IsOpen = true
	return v.SetMode(domain.ModeSearch)
}

// Close hides the overlay. The query, hits and cursor do not survive.
func (v *View) Close() {
	v.session = domain.NewSearchSession()
	v.tracker.Reset()
	v.header.Reset()
	v.header.SetMode(domain.ModeSearch)
	v.list.Reset()
}

func (v *View) closeCmd() tea.Cmd {
	v.Close()
	return nil
}

// Toggle opens a closed overlay and closes an open one.
func (v *View) Toggle() tea.Cmd {
	if v.session.IsOpen {
		v.Close()
		return nil
	}
	return v.Open()
}

// SetMode switches between Search and Ask AI. Ask AI clears the cursor so
// coming back to Search starts unfocused.
func (v *View) SetMode(mode domain.Mode) tea.Cmd {
	v.session.Mode = mode
	if mode == domain.ModeAskAI {
		v.list.ClearActiveResult()
	}
	return v.header.SetMode(mode)
}

// Select closes the overlay and delivers the navigation for url on the
// next frame.
func (v *View) Select(url string) tea.Cmd {
	nav := domain.Navigation{Kind: domain.NavigateExternal, URL: url}
	if v.selection != nil {
		nav = v.selection.Resolve(url)
	}
	v.Close()
	return tea.Tick(FrameDelay, func(time.Time) tea.Msg {
		return messages.NavigationRequested{Navigation: nav}
	})
}

func (v *View) refine(query string) tea.Cmd {
	v.session.Query = query
	v.list.SetQuery(query)
	v.list.SetLoading(true)
	v.header.SetStalled(false)
	return v.tracker.Refine(v.ctx, query)
}

func (v *View) openExternal(url string) tea.Cmd {
	actions := v.actions
	ctx := v.ctx
	return func() tea.Msg {
		if actions == nil {
			return messages.ActionCompleted{Action: "open", Err: ErrNoActionService}
		}
		return messages.ActionCompleted{Action: "open", Err: actions.OpenExternal(ctx, url)}
	}
}

func (v *View) copyURL(hit domain.Hit) tea.Cmd {
	actions := v.actions
	ctx := v.ctx
	return func() tea.Msg {
		if actions == nil {
			return messages.ActionCompleted{Action: "copy_url", Err: ErrNoActionService}
		}
		return messages.ActionCompleted{Action: "copy_url", Err: actions.CopyURL(ctx, &hit)}
	}
}

// Update handles messages for the overlay.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SearchCompleted:
		if !v.tracker.Apply(msg) {
			return v, nil
		}
		v.list.SetLoading(false)
		v.header.SetStalled(false)
		if err := v.tracker.Err(); err != nil {
			v.list.SetError(err)
		} else {
			v.list.SetHits(v.tracker.Hits())
		}
		return v, nil

	case messages.SearchStalled:
		if !v.tracker.MarkStalled(msg) {
			return v, nil
		}
		return v, v.header.SetStalled(true)

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.header, cmd = v.header.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if !v.session.IsOpen {
			return v, nil
		}
		return v, v.handleKeyMsg(msg)

	case tea.MouseMsg:
		if !v.session.IsOpen || v.session.Mode != domain.ModeSearch {
			return v, nil
		}
		msg.Y -= ListTop
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		if v.list.Focused() {
			v.header.Blur()
		}
		return v, cmd
	}

	var cmd tea.Cmd
	v.header, cmd = v.header.Update(msg)
	return v, cmd
}

// handleKeyMsg routes keys by mode and focus.
func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if keymap.Matches(msg.String(), v.keymap.ToggleMode) {
		return v.SetMode(v.session.Mode.Toggle())
	}

	if v.session.Mode == domain.ModeAskAI {
		if keymap.Matches(msg.String(), v.keymap.Cancel) {
			v.Close()
			return nil
		}
		var cmd tea.Cmd
		v.askai, cmd = v.askai.Update(msg)
		return cmd
	}

	if keymap.Matches(msg.String(), v.keymap.CopyURL) {
		if hit := v.list.ActiveHit(); hit != nil {
			return v.copyURL(*hit)
		}
		return nil
	}

	if !v.list.Focused() {
		var cmd tea.Cmd
		v.header, cmd = v.header.Update(msg)
		return cmd
	}

	// Typing while a row is focused goes back to the input.
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace:
		v.list.ClearActiveResult()
		focus := v.header.Focus()
		var cmd tea.Cmd
		v.header, cmd = v.header.Update(msg)
		return tea.Batch(focus, cmd)
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

// SetAssistantURL changes the Ask AI destination.
func (v *View) SetAssistantURL(url string) {
	v.askai.SetURL(url)
}

// SetStallDelay changes the stall threshold.
func (v *View) SetStallDelay(d time.Duration) {
	v.tracker.SetStallDelay(d)
}

// SetDimensions sets the overlay dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	inner := v.panelWidth() - 4
	v.header.SetWidth(inner)
	v.list.SetDimensions(inner, max(list.RowHeight, height-ListTop-4))
}

func (v *View) panelWidth() int {
	return max(30, min(v.width-2, maxPanelWidth))
}

// IsOpen reports whether the overlay is shown.
func (v *View) IsOpen() bool {
	return v.session.IsOpen
}

// Session returns the current session state.
func (v *View) Session() domain.SearchSession {
	return v.session
}

// Mode returns the current mode.
func (v *View) Mode() domain.Mode {
	return v.session.Mode
}

// Results returns the navigation handle of the result list.
func (v *View) Results() list.ResultsHandle {
	return v.list
}

// List returns the result list.
func (v *View) List() *list.ResultList {
	return v.list
}

// Header returns the mode header.
func (v *View) Header() *header.Header {
	return v.header
}

// Tracker returns the query tracker.
func (v *View) Tracker() *querystate.Tracker {
	return v.tracker
}

// View renders the overlay, or "" when closed.
func (v *View) View() string {
	if !v.session.IsOpen {
		return ""
	}

	inner := v.panelWidth() - 4
	divider := v.styles.Muted.Render(lipgloss.NewStyle().Width(inner).Render(strings.Repeat("─", max(0, inner))))

	var body string
	if v.session.Mode == domain.ModeAskAI {
		body = v.askai.View()
	} else {
		body = v.list.View()
	}

	panel := v.styles.Overlay.Width(v.panelWidth() - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, v.header.View(), divider, body),
	)
	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, panel)
}
