// Package clipboard implements driven.Clipboard using the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// ErrUnsupported is returned when no clipboard utility is available
// (for example xclip or xsel on Linux).
var ErrUnsupported = errors.New("clipboard: unsupported on this system")

// Ensure Clipboard implements driven.Clipboard at compile time.
var _ driven.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

// New creates a system clipboard adapter.
func New() *Clipboard {
	return &Clipboard{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// WriteText copies text to the clipboard.
func (c *Clipboard) WriteText(text string) error {
	if c.unsupported {
		return ErrUnsupported
	}
	return c.write(text)
}
