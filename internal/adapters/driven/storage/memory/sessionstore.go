package memory

import (
	"errors"
	"sync"

	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("session store closed")

// SessionStore keeps session values for the lifetime of the process.
type SessionStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		values: make(map[string]string),
	}
}

// Get returns the value for key.
func (s *SessionStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrClosed
	}
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores a value for key.
func (s *SessionStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.values[key] = value
	return nil
}

// Close discards all values.
func (s *SessionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.values = nil
	return nil
}
