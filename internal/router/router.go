package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kaitozaw/tennislot/internal/config"
	"github.com/kaitozaw/tennislot/internal/handler"
	"github.com/kaitozaw/tennislot/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication: the
// health check and the public booking page. The public route sits
// behind the response cache so repeated player loads of the same page
// are served from Redis.
func RegisterRoutes(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/book/:slug", p.GetPage, middleware.NewRedisCache(cacheCfg, rdb))
}

// RegisterAuth registers authentication routes. Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout takes a refresh token in the body or a bearer header; it
	// deliberately skips the JWT middleware so an expired session can
	// still be terminated.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(handler.RoleOrganiser))
	auth.GET("/me", a.Me)
}
