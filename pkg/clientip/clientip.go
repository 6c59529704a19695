package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest extracts the client IP, preferring proxy headers when present
// (X-Forwarded-For first entry, then X-Real-IP), falling back to RemoteAddr.
// Used by rate limiting.
func FromRequest(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return RemoteIP(r)
}

// RemoteIP returns the host part of r.RemoteAddr, ignoring proxy headers.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
