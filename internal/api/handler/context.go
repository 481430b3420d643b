package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playschool-a2z/management-api/internal/api/middleware"
	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// ctxPrincipal extracts the authenticated identity attached by the
// authentication middleware. Handlers behind a role gate can rely on it
// being present; the 401 here is a fast-fail for misconfigured routes.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
