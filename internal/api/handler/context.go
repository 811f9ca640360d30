package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artgallery/gallery-service/internal/api/middleware"
	"github.com/artgallery/gallery-service/internal/core/domain"
)

// ctxIdentity extracts the session identity injected by the Guard middleware
// and fails fast when a handler that needs an actor runs without one (the
// guard not being wired on the route is a programming error, not a user
// condition).
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.ContextIdentity).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}

// displayName is the name shown next to a painting, rating, or comment.
// FullName is optional, so fall back to the username.
func displayName(identity domain.Identity) string {
	if identity.FullName != "" {
		return identity.FullName
	}
	return identity.Username
}
