package reader

import "errors"

// ErrNoPageService is returned when the reader has no page loader.
var ErrNoPageService = errors.New("reader: page service is required")
