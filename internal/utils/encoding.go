package utils

import (
	"net/url"
	"strings"
)

// EncodeURIComponent percent-encodes s for use inside a URI component.
// Spaces become %20, never '+'.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	// QueryEscape encodes these, encodeURIComponent keeps them
	for _, r := range []struct{ from, to string }{
		{"%21", "!"}, {"%27", "'"}, {"%28", "("}, {"%29", ")"}, {"%2A", "*"},
	} {
		escaped = strings.ReplaceAll(escaped, r.from, r.to)
	}
	return escaped
}
