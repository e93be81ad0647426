// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by all endpoints. Every
// failure, whatever its origin (binding, routing, handler logic), leaves
// through fail(), which delegates to middleware.AbortWithFailure so clients
// always receive the same envelope:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "message": "Resource not found",
//	  "timestamp": "2025-01-02T03:04:05.678Z"
//	}
//
// Success responses are plain JSON documents written by ok().
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-lambda-api/internal/http/middleware"
)

// fail aborts the request with the uniform error payload for err.
// Non-*apierror.Failure errors are reported as Internal (500).
func fail(c *gin.Context, err error) {
	middleware.AbortWithFailure(c, err)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error payloads without depending on unexported helpers.
func Fail(c *gin.Context, err error) { fail(c, err) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
