package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tokengate/auth-service/internal/core/domain"
)

// ctxIdentity rebuilds the caller's identity from the claims injected by the
// Auth middleware. A non-empty role proves the middleware ran; handlers
// behind it should never see an empty one, but a misconfigured route would,
// so fail closed with a 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return domain.Identity{Username: username, Role: domain.Role(role)}, nil
}
