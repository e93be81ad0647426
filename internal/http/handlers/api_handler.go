// API HTTP handlers.
//
// This file exposes the public endpoints:
//   - GET    /               (index of available routes)
//   - GET    /health         (liveness)
//   - POST   /hello          (greeting)
//   - GET    /user/{id}      (path parameter echo)
//   - GET    /list           (page/count to index range)
//   - GET    /error          (always fails with Internal)
//
// Handlers are transport-thin: they bind input through bind.go, which turns
// every extraction problem into an *apierror.Failure, and hand failures to
// fail() so the client sees the shared error payload.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-lambda-api/internal/apierror"
	"github.com/tbourn/go-lambda-api/internal/utils"
)

//
// Handler wiring
//

// Handlers groups the HTTP endpoints. readDoc returns the OpenAPI document
// served on /doc/api.json; it may be nil when docs are disabled.
type Handlers struct {
	readDoc func() string
}

// New constructs a Handlers instance.
func New(readDoc func() string) *Handlers {
	return &Handlers{readDoc: readDoc}
}

//
// DTOs
//

// IndexResponse lists the entry points of the API.
type IndexResponse struct {
	Hello  string `json:"hello" example:"POST /hello"`
	Health string `json:"health" example:"GET /health"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status string `json:"status" example:"OK"`
}

// HelloRequest is the JSON payload for POST /hello.
type HelloRequest struct {
	// Name must be present; an empty string is accepted.
	Name *string `json:"name" binding:"required" example:"Ferris"`
}

// HelloResponse is the greeting returned by POST /hello.
type HelloResponse struct {
	Msg string `json:"msg" example:"Hello there, Ferris"`
}

// userURI binds the :id route parameter.
type userURI struct {
	ID string `uri:"id" binding:"required"`
}

// UserResponse acknowledges a user id.
type UserResponse struct {
	Msg    string `json:"msg" example:"User ID accepted"`
	UserID string `json:"user_id" example:"42"`
}

// listQuery binds the /list query string. Both parameters are required;
// count must be at least 1.
type listQuery struct {
	Page  *uint32 `form:"page" binding:"required"`
	Count *uint32 `form:"count" binding:"required,min=1"`
}

// ListResponse is the inclusive index range for a page.
type ListResponse struct {
	From uint64 `json:"from" example:"20"`
	To   uint64 `json:"to" example:"29"`
}

//
// Handlers
//

// Root godoc
// @ID          root
// @Summary     API index
// @Description Lists the main entry points.
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  handlers.IndexResponse
// @Router      / [get]
func (h *Handlers) Root(c *gin.Context) {
	ok(c, http.StatusOK, IndexResponse{Hello: "POST /hello", Health: "GET /health"})
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, HealthResponse{Status: "OK"})
}

// Hello godoc
// @ID          hello
// @Summary     Greet by name
// @Description Returns a greeting for the given name. The name is NFC-normalized.
// @Tags        Demo
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.HelloRequest  true  "Greeting payload"
//
// @Success     201  {object}  handlers.HelloResponse
// @Failure     400  {object}  apierror.Payload  "Malformed JSON"
// @Failure     413  {object}  apierror.Payload  "Body too large"
// @Failure     415  {object}  apierror.Payload  "Not a JSON body"
// @Failure     422  {object}  apierror.Payload  "Body does not match schema"
// @Router      /hello [post]
func (h *Handlers) Hello(c *gin.Context) {
	var req HelloRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, HelloResponse{Msg: "Hello there, " + norm.NFC.String(*req.Name)})
}

// User godoc
// @ID          getUser
// @Summary     Accept a user id
// @Tags        Demo
// @Produce     json
//
// @Param       id  path  string  true  "User ID"  example(42)
//
// @Success     200  {object}  handlers.UserResponse
// @Failure     400  {object}  apierror.Payload  "Bad path parameter"
// @Router      /user/{id} [get]
func (h *Handlers) User(c *gin.Context) {
	var uri userURI
	if err := bindURI(c, &uri); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, UserResponse{Msg: "User ID accepted", UserID: uri.ID})
}

// List godoc
// @ID          listRange
// @Summary     Page to index range
// @Description Converts a zero-based page and a page size into the inclusive item index range.
// @Tags        Demo
// @Produce     json
//
// @Param       page   query  int  true  "Zero-based page"  minimum(0)
// @Param       count  query  int  true  "Items per page"   minimum(1)
//
// @Success     200  {object}  handlers.ListResponse
// @Failure     400  {object}  apierror.Payload  "Bad query"
// @Router      /list [get]
func (h *Handlers) List(c *gin.Context) {
	var q listQuery
	if err := bindQuery(c, &q); err != nil {
		fail(c, err)
		return
	}
	from, to, valid := utils.PageRange(*q.Page, *q.Count)
	if !valid {
		// Unreachable while the min=1 binding holds.
		fail(c, apierror.QueryDecode(apierror.CauseData, 0, nil))
		return
	}
	ok(c, http.StatusOK, ListResponse{From: from, To: to})
}

// ServerError godoc
// @ID          serverError
// @Summary     Always fails
// @Description Exercises the Internal failure path.
// @Tags        Demo
// @Produce     json
// @Failure     500  {object}  apierror.Payload  "Internal server error"
// @Router      /error [get]
func (h *Handlers) ServerError(c *gin.Context) {
	fail(c, apierror.Internal(errServerError))
}

// NotFound answers requests that matched no route.
func (h *Handlers) NotFound(c *gin.Context) {
	fail(c, apierror.NotFound())
}

// MethodNotAllowed answers requests whose path exists under another method.
func (h *Handlers) MethodNotAllowed(c *gin.Context) {
	fail(c, apierror.MethodNotAllowed())
}
