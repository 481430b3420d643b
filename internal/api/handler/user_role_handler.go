package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playschool-a2z/management-api/internal/core/domain"
	"github.com/playschool-a2z/management-api/internal/core/ports"
)

// UserRoleHandler handles role administration endpoints.
type UserRoleHandler struct {
	service ports.UserRoleService
}

func NewUserRoleHandler(service ports.UserRoleService) *UserRoleHandler {
	return &UserRoleHandler{service: service}
}

type userSummary struct {
	UserID    string   `json:"user_id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Roles     []string `json:"roles"`
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

// Grant handles POST /api/user-roles/:id/roles/:role.
//
// @Summary      Grant a role to a user
// @Tags         user-roles
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "User ID"
// @Param        role  path      string  true  "Role name (e.g. teacher)"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/user-roles/{id}/roles/{role} [post]
func (h *UserRoleHandler) Grant(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	roleName := c.Param("role")
	if _, err := h.service.Grant(c.Request().Context(), principal.Username, c.Param("id"), roleName); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Role " + roleName + " added to user successfully"})
}

// Revoke handles DELETE /api/user-roles/:id/roles/:role.
//
// @Summary      Revoke a role from a user
// @Tags         user-roles
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "User ID"
// @Param        role  path      string  true  "Role name (e.g. teacher)"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/user-roles/{id}/roles/{role} [delete]
func (h *UserRoleHandler) Revoke(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	roleName := c.Param("role")
	if _, err := h.service.Revoke(c.Request().Context(), principal.Username, c.Param("id"), roleName); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Role " + roleName + " removed from user successfully"})
}

// Roles handles GET /api/user-roles/:id/roles.
//
// @Summary      List a user's roles
// @Tags         user-roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  rolesResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/user-roles/{id}/roles [get]
func (h *UserRoleHandler) Roles(c echo.Context) error {
	roles, err := h.service.Roles(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{Roles: roleNames(roles)})
}

// UsersWithRole handles GET /api/user-roles/roles/:role/users.
//
// @Summary      List users holding a role
// @Tags         user-roles
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "Role name (e.g. teacher)"
// @Success      200   {array}   userSummary
// @Failure      400   {object}  map[string]string
// @Router       /api/user-roles/roles/{role}/users [get]
func (h *UserRoleHandler) UsersWithRole(c echo.Context) error {
	users, err := h.service.UsersWithRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return err
	}

	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, toUserSummary(u))
	}
	return c.JSON(http.StatusOK, out)
}

func toUserSummary(u *domain.User) userSummary {
	return userSummary{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     roleNames(u.Roles),
	}
}
