package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/auth"
	pkgErrors "blog-platform/pkg/errors"
	"blog-platform/pkg/response"
)

// respondError translates domain errors into HTTP responses. Credential
// failures deliberately share one message so the response does not reveal
// whether the email exists. Anything not explicitly recognized maps to
// 500 with the given generic message plus the raw detail.
func (h *handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "email already registered"))
	case errors.Is(err, auth.ErrInvalidCredentials):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password"))
	case errors.Is(err, auth.ErrEmailNotVerified):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, "email not verified"))
	case errors.Is(err, auth.ErrAccountBlocked):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusForbidden, "account is blocked"))
	case errors.Is(err, auth.ErrInvalidVerifyToken):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid or expired verification token"))
	case errors.Is(err, auth.ErrUserNotFound):
		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "user not found"))
	default:
		response.InternalError(c, fallback, err)
	}
}
