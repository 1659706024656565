package http

import (
	"github.com/gin-gonic/gin"

	"blog-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// credential endpoints sit behind a per-IP rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, loginPerMin int) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", mw.RateLimit(loginPerMin), h.Register)
		authGroup.POST("/login", mw.RateLimit(loginPerMin), h.Login)
		authGroup.GET("/verify-email", h.VerifyEmail)
		authGroup.POST("/google", h.GoogleSignIn)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
