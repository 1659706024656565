package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/model"
	"blog-platform/pkg/response"
)

// scopeKey is the gin context key the resolved caller identity is stored
// under.
const scopeKey = "scope"

// Auth resolves the caller identity from the Authorization header and
// attaches it to the request context. Requests without a valid Bearer
// token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(parts[1])
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   model.Role(claims.Role),
		})
		c.Next()
	}
}

// RequireRoles permits continuation only when the resolved identity's role
// is an exact member of the accepted set. Comparison is case-sensitive and
// carries no hierarchy: a route must name every role it accepts.
// Must run after Auth. An empty role set is a route definition bug.
func (m Middleware) RequireRoles(roles ...model.Role) gin.HandlerFunc {
	if len(roles) == 0 {
		panic("middleware.RequireRoles: at least one role is required")
	}

	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if _, ok := allowed[sc.Role]; !ok {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetScope returns the caller identity attached by Auth, if any.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// SetScope attaches a caller identity to the context. Exposed for tests.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
