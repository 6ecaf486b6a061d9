// Package mcp provides an MCP (Model Context Protocol) server adapter for docsearch.
// It lets AI assistants search the docs index and read docs pages as markdown.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingPageService is returned when read_page is called without a page loader.
var ErrMissingPageService = errors.New("mcp: page service is required")

// ErrEmptyQuery is returned when search_docs is called without a query.
var ErrEmptyQuery = errors.New("mcp: query is required")
