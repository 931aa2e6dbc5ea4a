// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/homeland-scout/pg-finder/internal/handler"
	"github.com/homeland-scout/pg-finder/internal/middleware"
	"github.com/homeland-scout/pg-finder/internal/repository"
)

// RegisterRoutes registers routes that need no dependencies.
// Currently this is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login endpoints under /v1/auth. They
// serve both the admin console and the owner portal; the issued token
// carries the role that the protected groups check.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated browse surface:
// search, listing detail, locations, stats and the interest action.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, i *handler.InterestHandler) {
	e.GET("/v1/listings", p.SearchListings)
	e.GET("/v1/listings/:id", p.GetListing)
	e.GET("/v1/locations", p.GetLocations)
	e.GET("/v1/stats", p.GetStats)
	e.POST("/v1/listings/:id/interest", i.RecordInterest)
}

// RegisterAdmin registers the management console under /v1/admin,
// gated on a valid access token with the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(repository.RoleAdmin))
	g.GET("/listings", a.ListListings)
	g.POST("/listings", a.CreateListing)
	g.PUT("/listings/:id", a.UpdateListing)
	g.DELETE("/listings/:id", a.DeleteListing)
}

// RegisterOwner registers the owner portal under /v1/owner, gated on
// the OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group("/v1/owner")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(repository.RoleOwner))
	g.GET("/me", o.Me)
	g.GET("/listings", o.MyListings)
	g.GET("/listings/:id/interactions", o.ListingInteractions)
}
