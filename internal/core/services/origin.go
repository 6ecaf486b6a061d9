package services

import (
	"net/url"
	"strings"
	"sync"
)

// siteOrigin holds the parsed site origin shared by services that resolve
// URLs. It is replaced when settings are reloaded.
type siteOrigin struct {
	mu  sync.RWMutex
	url *url.URL
}

func newSiteOrigin(origin string) *siteOrigin {
	o := &siteOrigin{}
	o.set(origin)
	return o
}

func (o *siteOrigin) set(origin string) {
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		parsed = nil
	}
	o.mu.Lock()
	o.url = parsed
	o.mu.Unlock()
}

func (o *siteOrigin) get() *url.URL {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.url == nil {
		return nil
	}
	u := *o.url
	return &u
}

// sameOrigin compares scheme, host and effective port.
func sameOrigin(a, b *url.URL) bool {
	if !strings.EqualFold(a.Scheme, b.Scheme) {
		return false
	}
	if !strings.EqualFold(a.Hostname(), b.Hostname()) {
		return false
	}
	return effectivePort(a) == effectivePort(b)
}

func effectivePort(u *url.URL) string {
	if port := u.Port(); port != "" {
		return port
	}
	switch strings.ToLower(u.Scheme) {
	case "http":
		return "80"
	case "https":
		return "443"
	default:
		return ""
	}
}
