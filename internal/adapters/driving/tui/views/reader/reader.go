// Package reader provides the docs page reader view for the TUI.
package reader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
)

// CopiedDuration is how long the copy button reads "Copied".
const CopiedDuration = 2 * time.Second

// CopyLabel is the copy button text, also reported as the click text.
const CopyLabel = "Copy page"

// chromeHeight is the number of lines above the viewport: title and rule.
const chromeHeight = 2

// Config holds the services the reader drives.
type Config struct {
	Pages        driving.PageService
	Copy         driving.CopyService
	ResultAction driving.ResultActionService
	HomePath     string
}

// View is the page reader.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	pages   driving.PageService
	copier  driving.CopyService
	actions driving.ResultActionService
	ctx     context.Context

	homePath string
	page     *domain.Page
	history  []string
	pending  string
	loading  bool
	err      error

	copying bool
	copied  bool
	copySeq uint64

	width  int
	height int
}

// NewView creates a reader with no page loaded.
func NewView(s *styles.Styles, km *keymap.KeyMap, cfg Config) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	homePath := cfg.HomePath
	if homePath == "" {
		homePath = domain.DefaultHomePath
	}

	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 20),
		pages:    cfg.Pages,
		copier:   cfg.Copy,
		actions:  cfg.ResultAction,
		ctx:      context.Background(),
		homePath: homePath,
		width:    80,
		height:   22,
	}
}

// WithContext sets the context used for page loads and actions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load fetches target and pushes the current page onto the history.
func (v *View) Load(target string) tea.Cmd {
	if v.page != nil {
		v.history = append(v.history, v.page.Path)
	}
	return v.load(target)
}

// Home loads the configured home page.
func (v *View) Home() tea.Cmd {
	return v.Load(v.homePath)
}

// Back loads the previous page. It returns nil when there is no history.
func (v *View) Back() tea.Cmd {
	if len(v.history) == 0 {
		return nil
	}
	target := v.history[len(v.history)-1]
	v.history = v.history[:len(v.history)-1]
	return v.load(target)
}

func (v *View) load(target string) tea.Cmd {
	v.pending = target
	v.loading = true
	v.err = nil

	pages := v.pages
	ctx := v.ctx
	return func() tea.Msg {
		if pages == nil {
			return messages.PageLoaded{Target: target, Err: ErrNoPageService}
		}
		page, err := pages.Load(ctx, target)
		return messages.PageLoaded{Target: target, Page: page, Err: err}
	}
}

// Update handles messages for the reader.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PageLoaded:
		if msg.Target != v.pending {
			return v, nil
		}
		v.loading = false
		v.pending = ""
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.setPage(msg.Page)
		return v, nil

	case messages.CopyCompleted:
		v.copying = false
		if msg.Err != nil {
			return v, nil
		}
		v.copied = true
		v.copySeq++
		seq := v.copySeq
		return v, tea.Tick(CopiedDuration, func(time.Time) tea.Msg {
			return messages.CopyReset{Seq: seq}
		})

	case messages.CopyReset:
		if msg.Seq == v.copySeq {
			v.copied = false
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.CopyMarkdown):
		return v, v.CopyMarkdown()
	case keymap.Matches(msg.String(), v.keymap.OpenBrowser):
		return v, v.openInBrowser()
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, v.Back()
	case keymap.Matches(msg.String(), v.keymap.Home):
		return v, v.Home()
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// CopyMarkdown copies the page content. It is a no-op while a copy is in
// flight or when there is nothing to copy.
func (v *View) CopyMarkdown() tea.Cmd {
	if v.copying || v.page == nil || strings.TrimSpace(v.page.Markdown) == "" || v.copier == nil {
		return nil
	}
	v.copying = true

	copier := v.copier
	ctx := v.ctx
	req := driving.CopyRequest{
		Content: v.page.Markdown,
		Label:   CopyLabel,
		DocSlug: v.page.Slug(),
	}
	return func() tea.Msg {
		return messages.CopyCompleted{Err: copier.CopyMarkdown(ctx, req)}
	}
}

func (v *View) openInBrowser() tea.Cmd {
	if v.page == nil || v.actions == nil {
		return nil
	}
	actions := v.actions
	ctx := v.ctx
	url := v.page.URL
	return func() tea.Msg {
		return messages.ActionCompleted{Action: "open", Err: actions.OpenExternal(ctx, url)}
	}
}

func (v *View) setPage(page *domain.Page) {
	v.page = page
	if page == nil {
		v.viewport.SetContent("")
		return
	}
	v.render()
	v.viewport.GotoTop()
	if page.Anchor != "" {
		if line, ok := anchorLine(v.wrapped(), page.Anchor); ok {
			v.viewport.SetYOffset(line)
		}
	}
}

func (v *View) wrapped() string {
	if v.page == nil {
		return ""
	}
	return lipgloss.NewStyle().Width(max(20, v.width-2)).Render(v.page.Markdown)
}

func (v *View) render() {
	v.viewport.SetContent(v.wrapped())
}

// anchorLine finds the markdown heading in content whose slug is anchor.
func anchorLine(content, anchor string) (int, bool) {
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		if domain.HeadingSlug(strings.TrimLeft(trimmed, "# ")) == anchor {
			return i, true
		}
	}
	return 0, false
}

// SetHomePath changes the page loaded by Home.
func (v *View) SetHomePath(path string) {
	if path != "" {
		v.homePath = path
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(1, height-chromeHeight)
	if v.page != nil {
		offset := v.viewport.YOffset
		v.render()
		v.viewport.SetYOffset(offset)
	}
}

// Page returns the loaded page, or nil.
func (v *View) Page() *domain.Page {
	return v.page
}

// Loading reports whether a page load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Copied reports whether the copy button currently reads "Copied".
func (v *View) Copied() bool {
	return v.copied
}

// Copying reports whether a copy is in flight.
func (v *View) Copying() bool {
	return v.copying
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// History returns the back stack, oldest first.
func (v *View) History() []string {
	return v.history
}

// YOffset returns the scroll position.
func (v *View) YOffset() int {
	return v.viewport.YOffset
}

// View renders the reader.
func (v *View) View() string {
	switch {
	case v.loading:
		return v.styles.Muted.Render(fmt.Sprintf("Loading %s...", v.pending))
	case v.err != nil:
		return v.styles.Error.Render(fmt.Sprintf("Could not load page: %v", v.err))
	case v.page == nil:
		return v.styles.Muted.Render("No page loaded.")
	}

	button := v.styles.Muted.Render("[c] " + CopyLabel)
	if v.copied {
		button = v.styles.Success.Render("Copied")
	}
	title := v.styles.Title.Render(v.page.Title)
	gap := max(1, v.width-lipgloss.Width(title)-lipgloss.Width(button))
	header := title + strings.Repeat(" ", gap) + button
	rule := v.styles.Muted.Render(strings.Repeat("─", max(0, v.width)))

	return lipgloss.JoinVertical(lipgloss.Left, header, rule, v.viewport.View())
}
