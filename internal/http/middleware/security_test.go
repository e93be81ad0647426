package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-lambda-api/internal/apierror"
)

func serveSecured(t *testing.T, opt SecurityOptions, req *http.Request, pre ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pre...)
	r.Use(SecurityHeaders(opt))
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "OK"}) })
	r.GET("/fail", func(c *gin.Context) { AbortWithFailure(c, apierror.NotFound()) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders_APIHeaders(t *testing.T) {
	w := serveSecured(t, SecurityOptions{}, httptest.NewRequest(http.MethodGet, "/ok", nil))

	for _, kv := range apiHeaders {
		if got := w.Header().Get(kv[0]); got != kv[1] {
			t.Fatalf("%s = %q; want %q", kv[0], got, kv[1])
		}
	}
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Fatalf("HSTS sent while disabled: %q", got)
	}
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "" {
		t.Fatalf("expose header set without a request id: %q", got)
	}
}

func TestSecurityHeaders_CacheControlOnlyOnFailures(t *testing.T) {
	w := serveSecured(t, SecurityOptions{}, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if got := w.Header().Get("Cache-Control"); got != "" {
		t.Fatalf("success response got Cache-Control %q", got)
	}

	w = serveSecured(t, SecurityOptions{}, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("Cache-Control") != "no-store" || w.Header().Get("Pragma") != "no-cache" {
		t.Fatalf("failure response cacheable: %v", w.Header())
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("failure response lost api headers: %v", w.Header())
	}
}

func TestSecurityHeaders_ExposeRequestID(t *testing.T) {
	cases := []struct {
		name, existing, want string
	}{
		{"none yet", "", "X-Request-ID"},
		{"append", "Foo", "Foo, X-Request-ID"},
		{"already listed", "X-Request-ID, Foo", "X-Request-ID, Foo"},
		{"already listed other case", "foo, x-request-id", "foo, x-request-id"},
		{"prefix is not a match", "X-Request-ID-Orig", "X-Request-ID-Orig, X-Request-ID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pre := func(c *gin.Context) {
				c.Header(requestIDHeader, "rid-1")
				if tc.existing != "" {
					c.Header("Access-Control-Expose-Headers", tc.existing)
				}
				c.Next()
			}
			w := serveSecured(t, SecurityOptions{}, httptest.NewRequest(http.MethodGet, "/ok", nil), pre)
			if got := w.Header().Get("Access-Control-Expose-Headers"); got != tc.want {
				t.Fatalf("expose = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	const day = 24 * time.Hour

	cases := []struct {
		name string
		opt  SecurityOptions
		xfp  string
		fwd  string
		tls  bool
		want string
	}{
		{"plain http", SecurityOptions{EnableHSTS: true}, "", "", false, ""},
		{"direct tls", SecurityOptions{EnableHSTS: true, HSTSMaxAge: 365 * day}, "", "", true, "max-age=31536000; includeSubDomains; preload"},
		{"default max age", SecurityOptions{EnableHSTS: true}, "https", "", false, "max-age=15552000; includeSubDomains; preload"},
		{"disabled", SecurityOptions{HSTSMaxAge: day}, "https", "", true, ""},
		{"first forwarded hop wins", SecurityOptions{EnableHSTS: true, HSTSMaxAge: day}, "http, https", "", true, ""},
		{"forwarded header", SecurityOptions{EnableHSTS: true, HSTSMaxAge: day}, "", `for=192.0.2.60;proto="https";by=203.0.113.43`, false, "max-age=86400; includeSubDomains; preload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tc.xfp != "" {
				req.Header.Set("X-Forwarded-Proto", tc.xfp)
			}
			if tc.fwd != "" {
				req.Header.Set("Forwarded", tc.fwd)
			}
			if tc.tls {
				req.TLS = &tls.ConnectionState{}
			}
			w := serveSecured(t, tc.opt, req)
			if got := w.Header().Get("Strict-Transport-Security"); got != tc.want {
				t.Fatalf("HSTS = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestForwardedHTTPS(t *testing.T) {
	cases := []struct {
		name string
		set  map[string]string
		want bool
	}{
		{"nothing", nil, false},
		{"xfp https upper", map[string]string{"X-Forwarded-Proto": "HTTPS"}, true},
		{"xfp http", map[string]string{"X-Forwarded-Proto": "http"}, false},
		{"forwarded bare", map[string]string{"Forwarded": "proto=https"}, true},
		{"forwarded http", map[string]string{"Forwarded": "proto=http, proto=https"}, false},
		{"forwarded without proto", map[string]string{"Forwarded": "for=10.0.0.1"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.set {
				req.Header.Set(k, v)
			}
			if got := forwardedHTTPS(req); got != tc.want {
				t.Fatalf("forwardedHTTPS = %v; want %v", got, tc.want)
			}
		})
	}
}
