package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tbourn/go-lambda-api/internal/apierror"
)

// bindJSON decodes and validates the JSON body into obj. The Content-Type is
// checked first so a non-JSON body is reported as such rather than as a
// syntax error. The whole body must be exactly one JSON value; anything after
// it is a syntax error. Any failure is returned as a body decode
// *apierror.Failure.
func bindJSON(c *gin.Context, obj any) error {
	if err := apierror.CheckJSONContentType(c.GetHeader("Content-Type")); err != nil {
		return apierror.FromBody(err)
	}
	if c.Request.Body == nil {
		return apierror.FromBody(io.EOF)
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return apierror.FromBody(err)
	}
	if err := json.Unmarshal(body, obj); err != nil {
		return apierror.FromBody(err)
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return apierror.FromBody(err)
	}
	return nil
}

// bindURI binds route parameters into obj (fields tagged `uri:"..."`).
func bindURI(c *gin.Context, obj any) error {
	if err := c.ShouldBindUri(obj); err != nil {
		return apierror.FromPath(err)
	}
	return nil
}

// bindQuery binds the query string into obj (fields tagged `form:"..."`).
func bindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return apierror.FromQuery(err)
	}
	return nil
}
