// Package askai provides the Ask AI panel shown inside the search overlay.
// The assistant itself lives at an external URL; the panel only frames it.
package askai

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/styles"
)

// Fixed frame size.
const (
	Width  = 64
	Height = 7
)

// Disclaimer is shown under the assistant link.
const Disclaimer = "Answers are generated by AI and can be wrong. Check them against the docs."

// Panel is the Ask AI frame.
type Panel struct {
	styles *styles.Styles
	url    string
	open   func(url string) tea.Cmd
}

// New creates a panel for the assistant at url. open is called on enter.
func New(s *styles.Styles, url string, open func(url string) tea.Cmd) *Panel {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Panel{styles: s, url: url, open: open}
}

// SetURL changes the assistant URL.
func (p *Panel) SetURL(url string) {
	p.url = url
}

// URL returns the assistant URL.
func (p *Panel) URL() string {
	return p.url
}

// Update opens the assistant on enter.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if p.url == "" || p.open == nil {
			return p, nil
		}
		return p, p.open(p.url)
	}
	return p, nil
}

// View renders the frame.
func (p *Panel) View() string {
	lines := []string{
		p.styles.Subtitle.Render("Ask AI"),
		"",
		p.styles.Normal.Render("Press enter to open the assistant:"),
		p.styles.Title.Render(p.url),
		"",
		p.styles.Muted.Render(Disclaimer),
	}

	return p.styles.Border.
		Width(Width).
		Height(Height).
		Render(strings.Join(lines, "\n"))
}
