package driven

// SessionStore is session-scoped key/value storage.
// Values live until the session ends; nothing is shared across sessions.
type SessionStore interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores a value for key.
	Set(key, value string) error

	// Close releases resources.
	Close() error
}
