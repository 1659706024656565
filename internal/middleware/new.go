package middleware

import (
	"blog-platform/pkg/log"
	"blog-platform/pkg/scope"
)

// Middleware bundles the cross-cutting request interceptors.
type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
}

func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
