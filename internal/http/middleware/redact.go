// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the scrubber used by Logger() so that access logs never
// carry obvious PII: e-mail addresses, phone numbers and UUID-like
// identifiers are replaced in query strings and header values, and sensitive
// headers are masked entirely. Bodies are never logged.
package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

// RedactOptions configures additional scrub behavior for Logger.
//
// MaskHeaders lists extra header names whose values are fully replaced with
// "[REDACTED]". Matching is case-insensitive and merged with the built-in set
// (Authorization, Cookie, Set-Cookie, X-Api-Key).
type RedactOptions struct {
	MaskHeaders []string
}

var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits only, so the hex groups of a UUID never match.
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

type redactor struct {
	mask map[string]struct{}
}

func newRedactor(opts RedactOptions) redactor {
	mask := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
		"x-api-key":     {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			mask[h] = struct{}{}
		}
	}
	return redactor{mask: mask}
}

// redact scrubs identifiers from s. UUIDs go first: the phone pattern is the
// loosest and would otherwise eat UUID digit groups.
func (r redactor) redact(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// phoneKeys are query parameters whose values are always masked as phone
// numbers, even when they are bare digits.
var phoneKeys = map[string]struct{}{
	"phone":  {},
	"tel":    {},
	"mobile": {},
	"msisdn": {},
}

// query scrubs a raw query string parameter by parameter. Plain integer values
// (page numbers, counts, offsets) are kept as-is unless the key names a phone.
func (r redactor) query(raw string) string {
	if raw == "" {
		return raw
	}
	parts := strings.Split(raw, "&")
	for i, p := range parts {
		k, v, found := strings.Cut(p, "=")
		if !found {
			parts[i] = r.redact(p)
			continue
		}
		if _, ok := phoneKeys[strings.ToLower(k)]; ok && v != "" {
			parts[i] = k + "=[REDACTED:phone]"
			continue
		}
		if isDigits(v) {
			continue
		}
		parts[i] = r.redact(k) + "=" + r.redact(v)
	}
	return strings.Join(parts, "&")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// headers returns a flattened, scrubbed copy of h.
func (r redactor) headers(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if _, ok := r.mask[strings.ToLower(k)]; ok {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = r.redact(strings.Join(vv, ", "))
	}
	return out
}
