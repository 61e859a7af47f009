package bot

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// apiTransport rewrites every outgoing request to target base instead of the
// default Discord REST endpoint, preserving the request's path, query and
// body. Only REST traffic goes through it; the gateway websocket connects
// directly.
type apiTransport struct {
	base *url.URL
	next http.RoundTripper
}

func newAPITransport(base *url.URL, next http.RoundTripper) *apiTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &apiTransport{base: base, next: next}
}

// RoundTrip implements http.RoundTripper. The request is cloned before the
// rewrite, so the caller's request is never mutated.
func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.URL.Scheme = t.base.Scheme
	clone.URL.Host = t.base.Host
	if prefix := strings.TrimSuffix(t.base.Path, "/"); prefix != "" {
		clone.URL.Path = prefix + clone.URL.Path
	}
	clone.Host = "" // recompute the Host header from the rewritten URL
	return t.next.RoundTrip(clone)
}

// routeThrough installs an apiTransport for rawURL on the session's HTTP
// client. The URL must be an http or https base with a host.
func routeThrough(session *discordgo.Session, rawURL string) error {
	base, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse discord api url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return fmt.Errorf("discord api url %q: unsupported scheme %q", rawURL, base.Scheme)
	}
	if base.Host == "" {
		return fmt.Errorf("discord api url %q: missing host", rawURL)
	}
	session.Client.Transport = newAPITransport(base, session.Client.Transport)
	return nil
}
