// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file is the single exit point for failed requests. Handlers and
// middleware hand any error to AbortWithFailure, which turns it into the
// uniform {"message","timestamp"} payload via apierror.Map, records a metric
// and logs at a level matching the outcome.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-lambda-api/internal/apierror"
)

// AbortWithFailure maps err to its status and payload, aborts the chain and
// writes the JSON response. Errors that are not *apierror.Failure values are
// treated as Internal (500).
//
// Failure responses are never cacheable. The underlying error is logged (debug for 4xx, error for 5xx) and attached
// to the Gin context; it never reaches the client.
func AbortWithFailure(c *gin.Context, err error) {
	f := apierror.Classify(err)
	status, payload := apierror.Map(f)

	apiFailures.WithLabelValues(f.Kind.String(), f.Cause.String(), strconv.Itoa(status)).Inc()

	lg := LoggerFrom(c)
	ev := lg.Debug()
	if status >= 500 {
		ev = lg.Error()
		_ = c.Error(f)
	}
	ev.Err(f.Err).
		Str("kind", f.Kind.String()).
		Str("cause", f.Cause.String()).
		Int("status", status).
		Msg("request failed")

	noStore(c.Writer.Header())
	c.AbortWithStatusJSON(status, payload)
}
