package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-lambda-api/internal/apierror"
)

// APIDoc godoc
// @ID          apiDoc
// @Summary     OpenAPI document
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  object
// @Router      /doc/api.json [get]
func (h *Handlers) APIDoc(c *gin.Context) {
	if h.readDoc == nil {
		fail(c, apierror.Internal(errors.New("api doc reader not configured")))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(h.readDoc()))
}
