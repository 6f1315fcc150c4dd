// Package nav implements virtual path handling for the album tree.
//
// A virtual path is a slash-delimited logical address into the server's
// folder hierarchy, independent of any filesystem. The empty string and "/"
// both denote the root. All other paths are kept in a normalized form:
// leading slash, no trailing slash.
package nav

import (
	"net/url"
	"strings"
)

// Root is the canonical non-empty representation of the tree root.
const Root = "/"

// IsRoot reports whether p addresses the top level of the tree.
func IsRoot(p string) bool {
	return p == "" || p == Root
}

// Normalize rewrites p into canonical form: empty stays empty, everything
// else gains exactly one leading slash and loses any trailing slashes.
// "/" is preserved as the root.
func Normalize(p string) string {
	if p == "" {
		return ""
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return Root
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// Parent returns the path with the last slash-delimited segment removed.
// Removing the only segment yields the root. Parent of the root is the root.
func Parent(p string) string {
	p = Normalize(p)
	if IsRoot(p) {
		return Root
	}
	idx := strings.LastIndex(p, "/")
	if idx <= 0 {
		return Root
	}
	return p[:idx]
}

// Segments splits p into its non-empty path segments, in order.
// The root has no segments.
func Segments(p string) []string {
	p = Normalize(p)
	if IsRoot(p) {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}

// Display returns a human-readable form of a path or folder name.
// Server-side names may be percent-encoded; decoding is a display concern
// only, raw values stay untouched for equality and navigation.
func Display(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
