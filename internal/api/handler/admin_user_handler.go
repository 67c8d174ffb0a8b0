package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// AdminUserHandler manages identities. Every route is behind RequireElevated.
type AdminUserHandler struct {
	authService ports.AuthService
}

func NewAdminUserHandler(authService ports.AuthService) *AdminUserHandler {
	return &AdminUserHandler{authService: authService}
}

// Create registers a new identity. The secret hash is never returned.
//
// @Summary      Create user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createIdentityRequest  true  "User"
// @Success      200   {object}  domain.Identity
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/admin/users [post]
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req createIdentityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	identity, err := h.authService.CreateIdentity(c.Request().Context(), ports.CreateIdentityInput{
		LoginKey: req.Email,
		Secret:   req.Password,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// List returns every identity without secrets.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Identity
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminUserHandler) List(c echo.Context) error {
	identities, err := h.authService.ListIdentities(c.Request().Context())
	if err != nil {
		return err
	}
	if identities == nil {
		identities = []*domain.Identity{}
	}
	return c.JSON(http.StatusOK, identities)
}
