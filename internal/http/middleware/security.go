// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file holds the response hardening applied to every route:
// SecurityHeaders sets a fixed header table plus HSTS for HTTPS traffic, and
// noStore marks failure payloads as uncacheable (each one carries its own
// timestamp). No CSP is set: the only HTML served is the Swagger UI, which
// needs inline scripts.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultHSTSMaxAge = 180 * 24 * time.Hour

// apiHeaders are sent on every response. The API only speaks JSON, so none of
// them change what a non-browser client sees.
var apiHeaders = [...][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()"},
	{"X-Permitted-Cross-Domain-Policies", "none"},
}

// SecurityOptions configures SecurityHeaders.
//
// HSTS is only sent when EnableHSTS is set and the request reached the edge
// over HTTPS (see forwardedHTTPS). HSTSMaxAge <= 0 means 180 days.
type SecurityOptions struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// SecurityHeaders writes apiHeaders, optional HSTS, and exposes X-Request-ID
// to browser clients through Access-Control-Expose-Headers.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	var hsts string
	if opt.EnableHSTS {
		hsts = hstsValue(opt.HSTSMaxAge)
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for _, kv := range apiHeaders {
			h.Set(kv[0], kv[1])
		}
		if hsts != "" && forwardedHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}
		if h.Get(requestIDHeader) != "" {
			exposeHeader(h, requestIDHeader)
		}
		c.Next()
	}
}

func hstsValue(maxAge time.Duration) string {
	if maxAge <= 0 {
		maxAge = defaultHSTSMaxAge
	}
	return "max-age=" + strconv.FormatInt(int64(maxAge/time.Second), 10) + "; includeSubDomains; preload"
}

// noStore forbids any cache from storing the response.
func noStore(h http.Header) {
	h.Set("Cache-Control", "no-store")
	h.Set("Pragma", "no-cache")
}

// exposeHeader adds name to Access-Control-Expose-Headers unless it is
// already listed.
func exposeHeader(h http.Header, name string) {
	const key = "Access-Control-Expose-Headers"
	cur := h.Get(key)
	if cur == "" {
		h.Set(key, name)
		return
	}
	for _, tok := range strings.Split(cur, ",") {
		if strings.EqualFold(strings.TrimSpace(tok), name) {
			return
		}
	}
	h.Set(key, cur+", "+name)
}

// forwardedHTTPS reports whether the client connection was HTTPS. Behind API
// Gateway or an ALB the app sees plain HTTP, so the first hop recorded in
// X-Forwarded-Proto or the RFC 7239 Forwarded header wins over r.TLS.
func forwardedHTTPS(r *http.Request) bool {
	if xfp := r.Header.Get("X-Forwarded-Proto"); xfp != "" {
		first, _, _ := strings.Cut(xfp, ",")
		return strings.EqualFold(strings.TrimSpace(first), "https")
	}
	if fwd := r.Header.Get("Forwarded"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		for _, pair := range strings.Split(first, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if ok && strings.EqualFold(k, "proto") {
				return strings.EqualFold(strings.Trim(v, `"`), "https")
			}
		}
	}
	return r.TLS != nil
}
