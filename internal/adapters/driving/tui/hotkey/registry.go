// Package hotkey provides scoped registration of global keyboard shortcuts.
//
// A shortcut is live between Register and the call to the release function
// it returns. Releasing is idempotent; after release the binding is inert.
package hotkey

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a matched shortcut.
type Handler func() tea.Cmd

type entry struct {
	id      uint64
	binding key.Binding
	handler Handler
}

// Registry holds the currently registered shortcuts.
type Registry struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a shortcut and returns the function that removes it.
func (r *Registry) Register(binding key.Binding, handler Handler) (release func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry{id: id, binding: binding, handler: handler})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Dispatch runs the first registered handler matching msg.
// It reports whether a shortcut consumed the key.
func (r *Registry) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	r.mu.Lock()
	var handler Handler
	for _, e := range r.entries {
		if key.Matches(msg, e.binding) {
			handler = e.handler
			break
		}
	}
	r.mu.Unlock()

	if handler == nil {
		return nil, false
	}
	return handler(), true
}

// Len returns the number of live shortcuts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
