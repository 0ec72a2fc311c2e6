package ghostbridge

import (
	"net/http"
	"strings"
)

// clientIP resolves the caller's address for the forged session payload.
// Prefers the reverse proxy's X-Real-IP, then the first hop of
// X-Forwarded-For, and falls back to loopback when neither is present.
func clientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		if ip := strings.TrimSpace(fwd); ip != "" {
			return ip
		}
	}

	return "127.0.0.1"
}
