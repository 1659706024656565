package http

import (
	"github.com/gin-gonic/gin"

	"blog-platform/internal/middleware"
	"blog-platform/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates an unverified account and emails a verification link.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration payload"
// @Success     201 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		h.respondError(c, err, "Registration failed")
		return
	}

	response.Created(c, h.newRegisterResp(output))
}

// Login godoc
// @Summary     Sign in with email and password
// @Description Issues a session token for a verified, active account.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		h.respondError(c, err, "Login failed")
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// VerifyEmail godoc
// @Summary     Verify an email address
// @Description Consumes a verification token and signs the user in.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       token query string true "Verification token from the email link"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/verify-email [GET]
func (h *handler) VerifyEmail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.VerifyEmail(ctx, c.Query("token"))
	if err != nil {
		h.l.Warnf(ctx, "uc.VerifyEmail: %v", err)
		h.respondError(c, err, "Email verification failed")
		return
	}

	response.OK(c, h.newVerifyEmailResp(output))
}

// GoogleSignIn godoc
// @Summary     Sign in with Google
// @Description Exchanges a Google authorization code for a session token,
//              creating the account on first use.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body googleReq true "Authorization code"
// @Success     200 {object} googleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/google [POST]
func (h *handler) GoogleSignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGoogleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GoogleSignIn(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GoogleSignIn: %v", err)
		h.respondError(c, err, "Google sign-in failed")
		return
	}

	response.OK(c, h.newGoogleResp(output))
}

// Me godoc
// @Summary     Current user profile
// @Description Returns the profile of the authenticated caller.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
// @Security    BearerAuth
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		h.respondError(c, err, "Failed to fetch profile")
		return
	}

	response.OK(c, h.newMeResp(output))
}
