// Package hostname extracts the host part that a TLD regex is matched against.
package hostname

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Extract returns the lower-cased host of raw, which is either a bare host name
// (optionally with a port) or an absolute URL.
//
// The rules follow how URLs are canonicalized before matching:
//   - Lower-case the host
//   - Drop the scheme, userinfo, path, query and fragment of URLs
//   - Drop the port, whether default or not
//   - Strip IPv6 brackets
//
// A trailing dot is kept since it is significant to the suffix pattern. If raw
// looks like a URL but cannot be parsed, an error is returned.
func Extract(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	host := raw
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("could not parse URL: %w", err)
		}
		if u.Host == "" {
			return "", fmt.Errorf("URL %q has no host", raw)
		}
		host = u.Host
	}

	// drop the port; a host without one fails to split and is kept as is
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	return strings.ToLower(host), nil
}
