package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/post"
	pkgErrors "blog-platform/pkg/errors"
	"blog-platform/pkg/response"
)

// respondError translates domain errors into HTTP responses. Anything
// not explicitly recognized is a collaborator failure and maps to 500
// with the given generic message plus the raw detail.
func (h *handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "post not found"))
	case errors.Is(err, post.ErrMissingAuthor):
		response.Unauthorized(c)
	default:
		response.InternalError(c, fallback, err)
	}
}
