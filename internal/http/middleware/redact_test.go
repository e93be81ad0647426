package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedactor_Redact(t *testing.T) {
	rd := newRedactor(RedactOptions{})

	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "page=2&count=10", "page=2&count=10"},
		{"email", "who=jane.doe@example.com", "who=[REDACTED:email]"},
		{"uuid", "id=3f2504e0-4f89-41d3-9a0c-0305e82c3301", "id=[REDACTED:id]"},
		{"phone", "tel=212-555-1212", "tel=[REDACTED:phone]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rd.redact(tc.in); got != tc.want {
				t.Fatalf("redact(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRedactor_Query(t *testing.T) {
	rd := newRedactor(RedactOptions{})

	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"max uint32 counters kept", "page=4294967295&count=4294967295", "page=4294967295&count=4294967295"},
		{"long integer kept", "offset=2125551212", "offset=2125551212"},
		{"phone key masked even as digits", "phone=2125551212&page=1", "phone=[REDACTED:phone]&page=1"},
		{"formatted phone under any key", "contact=212-555-1212", "contact=[REDACTED:phone]"},
		{"email value", "page=3&who=jane@example.com", "page=3&who=[REDACTED:email]"},
		{"bare flag", "verbose", "verbose"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rd.query(tc.in); got != tc.want {
				t.Fatalf("query(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRedactor_Headers(t *testing.T) {
	rd := newRedactor(RedactOptions{MaskHeaders: []string{" X-Tenant ", ""}})

	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("X-Api-Key", "k")
	h.Set("X-Tenant", "acme")
	h.Set("X-Contact", "ops@example.com")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	got := rd.headers(h)
	for _, k := range []string{"Authorization", "X-Api-Key", "X-Tenant"} {
		if got[k] != "[REDACTED]" {
			t.Fatalf("%s not masked: %q", k, got[k])
		}
	}
	if got["X-Contact"] != "[REDACTED:email]" {
		t.Fatalf("X-Contact not scrubbed: %q", got["X-Contact"])
	}
	if got["Accept"] != "application/json, text/plain" {
		t.Fatalf("Accept not flattened: %q", got["Accept"])
	}
}

func TestLogger_ScrubsQueryAndHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger(RedactOptions{MaskHeaders: []string{"X-Session"}}))
	r.GET("/user/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/user/7?email=a@b.io", nil)
	req.Header.Set("Authorization", "Bearer t0p")
	req.Header.Set("X-Session", "s3cr3t")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, leak := range []string{"a@b.io", "t0p", "s3cr3t"} {
		if strings.Contains(out, leak) {
			t.Fatalf("log leaked %q:\n%s", leak, out)
		}
	}
	if !strings.Contains(out, `"path":"/user/:id"`) || !strings.Contains(out, "[REDACTED:email]") {
		t.Fatalf("expected route path and redaction marker, got:\n%s", out)
	}
}

func TestLogger_KeepsPaginationQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(Logger(RedactOptions{}))
	r.GET("/list", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/list?page=4294967295&count=4294967295", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"query":"page=4294967295&count=4294967295"`) {
		t.Fatalf("pagination query altered in log:\n%s", out)
	}
}
