package apierror

import (
	"net/http"
	"time"
)

// TimestampLayout is ISO-8601 with millisecond precision. Callers format UTC
// times, so the zone always renders as "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Payload is the uniform JSON error body.
type Payload struct {
	// Human-readable description of the failure category
	Message string `json:"message" example:"Resource not found"`
	// Time the response was produced (UTC, millisecond precision)
	Timestamp string `json:"timestamp" example:"2025-01-02T03:04:05.678Z"`
}

// Map classifies err and returns the status code and payload to send.
// The timestamp is taken at call time.
func Map(err error) (int, Payload) {
	return MapAt(err, time.Now())
}

// MapAt is Map with an explicit clock reading.
func MapAt(err error, now time.Time) (int, Payload) {
	status, msg := Resolve(err)
	return status, Payload{
		Message:   msg,
		Timestamp: now.UTC().Format(TimestampLayout),
	}
}

// Classify returns err as a *Failure. Errors that are not (and do not wrap)
// a *Failure, including nil, become Internal.
func Classify(err error) *Failure {
	if f, ok := asFailure(err); ok {
		return f
	}
	return Internal(err)
}

// Resolve returns the status code and message for err without building a
// payload.
func Resolve(err error) (int, string) {
	f := Classify(err)

	switch f.Kind {
	case KindBodyDecode:
		status, msg := bodyDefaults(f.Cause)
		return deferStatus(f.Status, status), msg
	case KindPathDecode:
		return deferStatus(f.Status, http.StatusBadRequest), pathMessage(f.Cause)
	case KindQueryDecode:
		return deferStatus(f.Status, http.StatusBadRequest), queryMessage(f.Cause)
	case KindNotFound:
		return http.StatusNotFound, "Resource not found"
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed, "Method not allowed"
	case KindTooManyRequests:
		return http.StatusTooManyRequests, "Too many requests"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func deferStatus(supplied, def int) int {
	if validStatus(supplied) {
		return supplied
	}
	return def
}

func bodyDefaults(c Cause) (int, string) {
	switch c {
	case CauseSyntax:
		return http.StatusBadRequest, "Invalid JSON syntax"
	case CauseData:
		return http.StatusUnprocessableEntity, "Model deserialization failed"
	case CauseContentType:
		return http.StatusUnsupportedMediaType, "Invalid Content-Type header"
	case CauseBodyRead:
		return http.StatusBadRequest, "Unable to process request body"
	default:
		return http.StatusBadRequest, "Unknown JSON body error"
	}
}

func pathMessage(c Cause) string {
	switch c {
	case CauseData:
		return "Path parameter deserialization failed"
	case CauseMissing:
		return "Missing path parameter(s)"
	default:
		return "Unknown URL path error"
	}
}

func queryMessage(c Cause) string {
	if c == CauseData {
		return "Query deserialization failed"
	}
	return "Unknown URL query error"
}
