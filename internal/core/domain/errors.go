package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrSearchDisabled indicates the provider identifiers are not configured.
	// The search feature renders nothing rather than degrading.
	ErrSearchDisabled = errors.New("search disabled: provider not configured")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyContent indicates there is nothing to copy or convert.
	ErrEmptyContent = errors.New("empty content")

	// ErrCopyInProgress indicates a copy is already running.
	ErrCopyInProgress = errors.New("copy in progress")

	// ErrNoNavigation indicates a selection had no destination URL.
	ErrNoNavigation = errors.New("no navigation target")

	// ErrExternalPage indicates a page lies outside the configured site origin.
	ErrExternalPage = errors.New("page outside site origin")
)
