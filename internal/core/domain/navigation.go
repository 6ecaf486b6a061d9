package domain

// NavigationKind says how a selected URL is reached.
type NavigationKind int

const (
	// NavigateNone means there is nothing to navigate to.
	NavigateNone NavigationKind = iota

	// NavigateInApp routes to a path on the configured site origin
	// without leaving the application.
	NavigateInApp

	// NavigateExternal hands the literal URL to the system browser.
	NavigateExternal
)

// String returns the string representation of the kind.
func (k NavigationKind) String() string {
	switch k {
	case NavigateNone:
		return "none"
	case NavigateInApp:
		return "in_app"
	case NavigateExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Navigation is the resolved destination of a selection.
type Navigation struct {
	// Kind selects in-app routing or a full browser navigation.
	Kind NavigationKind

	// Path is the in-app path, set for NavigateInApp.
	Path string

	// Hash is the fragment including its leading "#", or "".
	Hash string

	// URL is the literal URL for NavigateExternal, or the absolute
	// resolved URL for NavigateInApp.
	URL string
}

// Target returns path+hash for in-app routing, or the literal URL otherwise.
func (n Navigation) Target() string {
	if n.Kind == NavigateInApp {
		return n.Path + n.Hash
	}
	return n.URL
}

// Anchor returns the fragment without its leading "#".
func (n Navigation) Anchor() string {
	if len(n.Hash) > 1 {
		return n.Hash[1:]
	}
	return ""
}
