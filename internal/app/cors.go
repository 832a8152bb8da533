package app

import (
	"net/url"
	"strings"
)

// originHost strips the scheme from an Origin header value, leaving
// "host[:port]". Values that fail to parse are returned untouched so
// plain-host entries in the config still match.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// hostMatches checks host against one allowed-origin entry. An entry is
// either a literal host, "*.example.com" for any subdomain, or
// "localhost:*" for any port.
func hostMatches(entry, host string) bool {
	switch {
	case entry == host:
		return true
	case strings.HasPrefix(entry, "*."):
		return strings.HasSuffix(host, entry[1:])
	case strings.HasSuffix(entry, ":*"):
		return strings.HasPrefix(host, entry[:len(entry)-1])
	}
	return false
}
