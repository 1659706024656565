package http

import (
	"github.com/gin-gonic/gin"

	"blog-platform/internal/middleware"
	"blog-platform/internal/model"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Listing is public; detail requires authentication; creation is gated to
// the roles the route names explicitly.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	posts := rg.Group("/posts")
	{
		posts.GET("", h.List)
		posts.GET("/:id", mw.Auth(), h.Detail)
		posts.POST("", mw.Auth(), mw.RequireRoles(model.RoleAdmin, model.RoleUser), h.Create)
	}
}
