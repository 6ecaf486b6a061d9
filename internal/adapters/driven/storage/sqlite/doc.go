// Package sqlite provides a SQLite-backed session store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// A session groups the attribution values (UTM parameters, initial referrer,
// anonymous id) captured for one browsing session. Sessions are identified by
// an id supplied by the caller, so several invocations of the CLI from the same
// shell can share one session. Sessions idle for longer than the TTL are pruned
// when the store opens.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.docsearch/data/session.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
