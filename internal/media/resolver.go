package media

import (
	"net/url"
	"regexp"
	"strings"
)

// tokenPathPrefixes lists the only URL paths that accept a bearer token as a
// query parameter. Image and video elements cannot send an Authorization
// header, so the streaming endpoints authorize via ?token= instead; every
// other path keeps using the header and must never leak the token into URLs.
var tokenPathPrefixes = []string{
	"/api/photo/",
	"/api/thumb/",
	"/api/vthumb/",
	"/api/video/",
	"/watch/",
}

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

// Resolver turns possibly-relative media references from album listings into
// absolute, authorized URLs against a fixed API base.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver for the given API base URL. Trailing
// slashes on the base are ignored.
func NewResolver(base string) *Resolver {
	return &Resolver{base: strings.TrimRight(base, "/")}
}

// Base returns the configured API base without trailing slashes.
func (r *Resolver) Base() string {
	return r.base
}

// Resolve returns the absolute, token-authorized URL for a raw media
// reference. An empty reference resolves to the empty string, which callers
// treat as "no media". Already-absolute http(s) references are kept as-is
// before token scoping runs on them. Resolve never fails: unparseable
// results fall back to prefix matching and manual query appending.
func (r *Resolver) Resolve(raw, token string) string {
	if raw == "" {
		return ""
	}
	abs := raw
	if !absoluteURLPattern.MatchString(raw) {
		if !strings.HasPrefix(abs, "/") {
			abs = "/" + abs
		}
		abs = r.base + abs
	}
	return r.WithToken(abs, token)
}

// WithToken appends the bearer token as a token= query parameter when u's
// path is on the streaming allow-list. URLs outside the allow-list and calls
// without a token return u unchanged. An existing token parameter is
// overwritten, last write wins.
func (r *Resolver) WithToken(u, token string) string {
	if token == "" || u == "" {
		return u
	}
	parsed, err := url.Parse(u)
	if err != nil {
		// Unparseable input still gets best-effort scoping so a broken
		// record cannot take the whole grid down with it.
		if !pathNeedsToken(u) {
			return u
		}
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		return u + sep + "token=" + url.QueryEscape(token)
	}
	if !pathNeedsToken(parsed.Path) {
		return u
	}
	q := parsed.Query()
	q.Set("token", token)
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func pathNeedsToken(p string) bool {
	for _, prefix := range tokenPathPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
