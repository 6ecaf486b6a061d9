package overlay

import "errors"

// ErrNoActionService is reported when a result action runs without a
// ResultActionService.
var ErrNoActionService = errors.New("overlay: result action service is required")
