package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the role-gated endpoints.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

type profileResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Profile handles GET /profile — any authenticated user.
//
// @Summary      Current user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Message:  "welcome to your profile",
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}

// AdminOnly handles GET /admin-only — admin role required (enforced by the
// RBAC middleware on the route).
//
// @Summary      Admin-only greeting
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin-only [get]
func (h *ProfileHandler) AdminOnly(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("hello admin %s, you have access", identity.Username),
	})
}
