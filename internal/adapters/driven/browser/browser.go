// Package browser implements driven.URLOpener using the platform's
// default URL handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure Opener implements driven.URLOpener at compile time.
var _ driven.URLOpener = (*Opener)(nil)

// Opener launches URLs in the system browser.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// New creates an opener for the current platform.
func New() *Opener {
	return &Opener{
		goos:  runtime.GOOS,
		start: startDetached,
	}
}

// Open opens url in the default browser without waiting for it to exit.
func (o *Opener) Open(url string) error {
	name, args, err := command(o.goos, url)
	if err != nil {
		return err
	}
	return o.start(name, args...)
}

// command returns the launcher for goos.
func command(goos, url string) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "open", []string{url}, nil
	case osLinux:
		return "xdg-open", []string{url}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
