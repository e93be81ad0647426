// Package apierror classifies request-handling failures and maps them to an
// HTTP status code plus the uniform JSON error payload returned by every
// endpoint:
//
//	{ "message": "Resource not found", "timestamp": "2025-01-02T03:04:05.678Z" }
//
// The package is transport-agnostic. Failures are produced either by the
// extraction layer (JSON body, URI and query binding; see FromBody, FromPath
// and FromQuery) or explicitly by handlers (NotFound, MethodNotAllowed,
// Internal, TooManyRequests). Map turns any error into (status, Payload) and
// never fails.
package apierror

import (
	"fmt"
	"net/http"
)

// Kind is the top-level failure category. The set is closed; values outside
// it are mapped as KindInternal.
type Kind uint8

const (
	KindInternal Kind = iota
	KindBodyDecode
	KindPathDecode
	KindQueryDecode
	KindNotFound
	KindMethodNotAllowed
	KindTooManyRequests
)

// String returns a stable snake_case label, used for metrics and logs.
func (k Kind) String() string {
	switch k {
	case KindBodyDecode:
		return "body_decode"
	case KindPathDecode:
		return "path_decode"
	case KindQueryDecode:
		return "query_decode"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Cause sub-classifies decode failures. A cause that has no meaning for the
// failure's kind is treated as CauseOther.
type Cause uint8

const (
	// CauseOther is the catch-all bucket of every decode category.
	CauseOther Cause = iota
	// CauseSyntax: the body is not well-formed JSON.
	CauseSyntax
	// CauseData: input was well-formed but did not fit the target type
	// (wrong JSON types, failed validation, unparsable path/query values).
	CauseData
	// CauseContentType: the body was not declared as JSON.
	CauseContentType
	// CauseBodyRead: the body could not be read (e.g. size limit exceeded).
	CauseBodyRead
	// CauseMissing: a required path parameter was absent.
	CauseMissing
)

func (c Cause) String() string {
	switch c {
	case CauseSyntax:
		return "syntax"
	case CauseData:
		return "data"
	case CauseContentType:
		return "content_type"
	case CauseBodyRead:
		return "body_read"
	case CauseMissing:
		return "missing"
	default:
		return "other"
	}
}

// Failure is a classified request-handling failure.
//
// Status is the code chosen by the extraction layer for decode failures; zero
// means "use the category default". It is ignored for the other kinds.
type Failure struct {
	Kind   Kind
	Cause  Cause
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Err != nil {
		return fmt.Sprintf("%s/%s: %v", f.Kind, f.Cause, f.Err)
	}
	return fmt.Sprintf("%s/%s", f.Kind, f.Cause)
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// BodyDecode builds a JSON body decoding failure.
func BodyDecode(cause Cause, status int, err error) *Failure {
	return &Failure{Kind: KindBodyDecode, Cause: cause, Status: status, Err: err}
}

// PathDecode builds a URL path parameter decoding failure.
func PathDecode(cause Cause, status int, err error) *Failure {
	return &Failure{Kind: KindPathDecode, Cause: cause, Status: status, Err: err}
}

// QueryDecode builds a URL query decoding failure.
func QueryDecode(cause Cause, status int, err error) *Failure {
	return &Failure{Kind: KindQueryDecode, Cause: cause, Status: status, Err: err}
}

// NotFound signals that no resource or route matched.
func NotFound() *Failure { return &Failure{Kind: KindNotFound} }

// MethodNotAllowed signals that the route exists but not for this method.
func MethodNotAllowed() *Failure { return &Failure{Kind: KindMethodNotAllowed} }

// TooManyRequests signals that the caller exceeded its rate limit.
func TooManyRequests() *Failure { return &Failure{Kind: KindTooManyRequests} }

// Internal wraps an unclassified server-side failure. err may be nil.
func Internal(err error) *Failure { return &Failure{Kind: KindInternal, Err: err} }

// validStatus reports whether s is an error status the mapper may defer to.
func validStatus(s int) bool {
	return s >= http.StatusBadRequest && s <= 599
}
