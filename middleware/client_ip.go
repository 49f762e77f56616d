package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIp resolves the caller address, honouring X-Forwarded-For
// set by the fronting proxy.
func ClientIp(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
