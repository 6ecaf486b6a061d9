// Package file provides file-based configuration for docsearch.
//
// Configuration lives in ~/.docsearch/config.toml. Nested TOML tables are
// exposed as dot-notation keys ("search.app_id"), and written back as tables.
// Watcher reloads the file when it changes on disk.
package file
